package controllers

type URIID struct {
	ID uint64 `uri:"id"` // ID of the resource
}
