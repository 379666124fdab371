package domain

import "time"

// RemotePostAttrs carries the mutable attributes of a remote post. Nil
// fields leave the stored value untouched on re-ingest.
type RemotePostAttrs struct {
	URL      *string
	Title    *string
	Comment  *string
	Type     PostType
	Metadata *string
	PostTime *time.Time
}

// PostAttrs carries the attributes of a locally curated post.
type PostAttrs struct {
	Title    *string
	Comment  *string
	Type     PostType
	Metadata *string
	PostTime *time.Time
}

// FileAttrs carries the descriptive attributes of a file payload.
type FileAttrs struct {
	Hash     []byte
	Filename *string
	Mime     *string
	Ext      *string
	ThumbExt *string
	Metadata *string
}
