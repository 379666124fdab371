package domain

import "time"

// Source is one configured remote integration. Version tracks the schema of
// that integration's config/metadata mapping as it evolves.
type Source struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Version     int       `db:"version"`
	Config      *string   `db:"config"`
	Metadata    *string   `db:"metadata"`
	CreatedTime time.Time `db:"created_time"`
	UpdatedTime time.Time `db:"updated_time"`
}

// Tag is a local vocabulary entry, unique per (category, name) with
// case-insensitive name comparison.
type Tag struct {
	ID          int64       `db:"id"`
	Category    TagCategory `db:"category"`
	Name        string      `db:"name"`
	Flags       Flags       `db:"flags"`
	CreatedTime time.Time   `db:"created_time"`
	UpdatedTime time.Time   `db:"updated_time"`
}

func (t Tag) String() string {
	return t.Category.String() + ":" + t.Name
}

// RemoteTag is a source-scoped vocabulary entry, unique per
// (source, category, name), case-insensitive.
type RemoteTag struct {
	ID          int64       `db:"id"`
	SourceID    int64       `db:"source_id"`
	Category    TagCategory `db:"category"`
	Name        string      `db:"name"`
	Metadata    *string     `db:"metadata"`
	Flags       Flags       `db:"flags"`
	CreatedTime time.Time   `db:"created_time"`
	UpdatedTime time.Time   `db:"updated_time"`
}

func (t RemoteTag) String() string {
	return t.Category.String() + ":" + t.Name
}

// TagTranslation maps a RemoteTag to the local Tag it corresponds to.
// It shares its id with the owning RemoteTag. A null LocalTagID means the
// remote tag is deliberately not imported locally.
type TagTranslation struct {
	ID          int64     `db:"id"`
	LocalTagID  *int64    `db:"local_tag_id"`
	CreatedTime time.Time `db:"created_time"`
	UpdatedTime time.Time `db:"updated_time"`
}

// Post is a locally curated content record.
type Post struct {
	ID          int64      `db:"id"`
	Title       *string    `db:"title"`
	Comment     *string    `db:"comment"`
	Type        PostType   `db:"type"`
	Flags       Flags      `db:"flags"`
	Metadata    *string    `db:"metadata"`
	PostTime    *time.Time `db:"post_time"`
	CreatedTime time.Time  `db:"created_time"`
	UpdatedTime time.Time  `db:"updated_time"`
}

// RemotePost is a remote-origin content record. OriginalID is the minimal
// stable identifier assigned by the remote source; (SourceID, OriginalID)
// is unique and immutable after creation.
type RemotePost struct {
	ID          int64      `db:"id"`
	SourceID    int64      `db:"source_id"`
	OriginalID  string     `db:"original_id"`
	URL         *string    `db:"url"`
	Title       *string    `db:"title"`
	Comment     *string    `db:"comment"`
	Type        PostType   `db:"type"`
	Flags       Flags      `db:"flags"`
	Metadata    *string    `db:"metadata"`
	PostTime    *time.Time `db:"post_time"`
	CreatedTime time.Time  `db:"created_time"`
	UpdatedTime time.Time  `db:"updated_time"`
}

// File is a content record keyed conceptually by hash. It may be linked to
// at most one local Post and one RemotePost at the same time, so a curated
// copy of a remote file shares a single row.
type File struct {
	ID          int64     `db:"id"`
	LocalID     *int64    `db:"local_id"`
	RemoteID    *int64    `db:"remote_id"`
	LocalOrder  int       `db:"local_order"`
	RemoteOrder int       `db:"remote_order"`
	// content digest, md5 for compatibility
	Hash        []byte    `db:"hash"`
	Filename    *string   `db:"filename"`
	Mime        *string   `db:"mime"`
	Ext         *string   `db:"ext"`
	ThumbExt    *string   `db:"thumb_ext"`
	Metadata    *string   `db:"metadata"`
	Flags       Flags     `db:"flags"`
	CreatedTime time.Time `db:"created_time"`
	UpdatedTime time.Time `db:"updated_time"`
}

// Subscription is a named per-source feed that polls for new remote posts.
// Options and State are opaque blobs owned by the source integration.
type Subscription struct {
	ID          int64     `db:"id"`
	SourceID    int64     `db:"source_id"`
	Name        string    `db:"name"`
	Options     *string   `db:"options"`
	State       *string   `db:"state"`
	Flags       Flags     `db:"flags"`
	CreatedTime time.Time `db:"created_time"`
	UpdatedTime time.Time `db:"updated_time"`
}

func (s Subscription) Enabled() bool {
	return s.Flags.Has(SubscriptionFlagEnabled)
}

// Related is a directed edge from a RemotePost to a URL it points at.
// RemoteID stays null until the URL itself is ingested; dangling rows are a
// valid steady state.
type Related struct {
	ID          int64     `db:"id"`
	RelatedToID int64     `db:"related_to_id"`
	RemoteID    *int64    `db:"remote_id"`
	URL         string    `db:"url"`
	CreatedTime time.Time `db:"created_time"`
	UpdatedTime time.Time `db:"updated_time"`
}
