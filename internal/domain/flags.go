package domain

// Flags packs a set of boolean attributes into one stored integer.
// Bit numbering is append-only: existing bits are never renumbered, so
// persisted values stay valid across schema versions.
type Flags int64

func (f Flags) Has(bit Flags) bool {
	return f&bit != 0
}

func (f Flags) With(bit Flags) Flags {
	return f | bit
}

func (f Flags) Without(bit Flags) Flags {
	return f &^ bit
}

// Tag and RemoteTag flags.
const (
	TagFlagNone     Flags = 0
	TagFlagFavorite Flags = 1 << 0
)

// Post and RemotePost flags.
const (
	PostFlagNone     Flags = 0
	PostFlagFavorite Flags = 1 << 0
	PostFlagHidden   Flags = 1 << 1
	// removed in the remote host
	PostFlagRemoved Flags = 1 << 2
)

// File flags.
const (
	FileFlagNone     Flags = 0
	FileFlagFavorite Flags = 1 << 0
	FileFlagHidden   Flags = 1 << 1
	FileFlagRemoved  Flags = 1 << 2
	// accepted or rejected by local curation
	FileFlagProcessed Flags = 1 << 3
	// payload present on disk
	FileFlagPresent Flags = 1 << 4
	// thumbnail present on disk
	FileFlagThumbPresent Flags = 1 << 5
)

// Subscription flags. Subscriptions are enabled unless turned off.
const (
	SubscriptionFlagNone    Flags = 0
	SubscriptionFlagEnabled Flags = 1 << 0
)

// DefaultSubscriptionFlags is applied when a subscription is created
// without an explicit flags value.
const DefaultSubscriptionFlags = SubscriptionFlagEnabled
