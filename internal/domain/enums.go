package domain

import "fmt"

// TagCategory is a closed enumeration; unknown values are rejected at the
// storage boundary rather than stored as free-form integers.
type TagCategory int

const (
	CategoryGeneral   TagCategory = 1
	CategoryGroup     TagCategory = 2
	CategoryArtist    TagCategory = 3
	CategoryCopyright TagCategory = 4
	CategoryCharacter TagCategory = 5
	// informational tags or personal reminders
	CategoryMeta TagCategory = 6
)

func (c TagCategory) Valid() bool {
	return c >= CategoryGeneral && c <= CategoryMeta
}

func (c TagCategory) String() string {
	switch c {
	case CategoryGeneral:
		return "general"
	case CategoryGroup:
		return "group"
	case CategoryArtist:
		return "artist"
	case CategoryCopyright:
		return "copyright"
	case CategoryCharacter:
		return "character"
	case CategoryMeta:
		return "meta"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

func ParseTagCategory(s string) (TagCategory, error) {
	switch s {
	case "general":
		return CategoryGeneral, nil
	case "group":
		return CategoryGroup, nil
	case "artist":
		return CategoryArtist, nil
	case "copyright":
		return CategoryCopyright, nil
	case "character":
		return CategoryCharacter, nil
	case "meta":
		return CategoryMeta, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// PostType describes how the files of a post relate to each other.
type PostType int

const (
	// bundle of unrelated files, or just a single file
	TypeSet PostType = 1
	// the files are related in some way
	TypeCollection PostType = 2
	// text with files in between
	TypeBlog PostType = 3
)

func (t PostType) Valid() bool {
	return t >= TypeSet && t <= TypeBlog
}

func (t PostType) String() string {
	switch t {
	case TypeSet:
		return "set"
	case TypeCollection:
		return "collection"
	case TypeBlog:
		return "blog"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}
