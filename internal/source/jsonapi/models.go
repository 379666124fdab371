package jsonapi

// APIResponse is the page envelope returned by the remote endpoint.
type APIResponse struct {
	Items   []Item `json:"items"`
	HasMore bool   `json:"hasMore"`
}

// Item is one remote post as served by the endpoint. Cursor is the opaque
// position token to resume from once the item is archived.
type Item struct {
	ID       string    `json:"id"`
	URL      *string   `json:"url"`
	Title    *string   `json:"title"`
	Comment  *string   `json:"comment"`
	Type     string    `json:"type"`
	Metadata *string   `json:"metadata"`
	PostTime *string   `json:"postTime"`
	Tags     []APITag  `json:"tags"`
	Files    []APIFile `json:"files"`
	Related  []string  `json:"related"`
	Cursor   string    `json:"cursor"`
}

type APITag struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type APIFile struct {
	Hash     string  `json:"hash"` // hex digest
	Filename *string `json:"filename"`
	Mime     *string `json:"mime"`
	Ext      *string `json:"ext"`
}
