package converter

import "fmt"

// Kind selects one of the fixed conversion recipes
type Kind int

const (
	Photo Kind = iota
	Screenshot
	Sound
	Opus
	Video
	GifIsh
)

func (k Kind) String() string {
	switch k {
	case Photo:
		return "photo"
	case Screenshot:
		return "screenshot"
	case Sound:
		return "sound"
	case Opus:
		return "opus"
	case Video:
		return "video"
	case GifIsh:
		return "gif-ish"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DefaultResizeSize bounds photos to 2000x1000, only ever shrinking them
const DefaultResizeSize = "2000x1000>"

// Options holds the user flags a recipe reacts to.
// Flags a recipe does not know about are ignored.
type Options struct {
	Strip      bool   // photo, screenshot
	Resize     bool   // photo
	ResizeSize string // photo, used when Resize is set
	Pedantic   bool   // screenshot
	AutoOrient bool   // photo
}

// Tools names the external programs recipes invoke
type Tools struct {
	Convert string
	FFmpeg  string
	Oxipng  string
}

// DefaultTools are the program names looked up in PATH
func DefaultTools() Tools {
	return Tools{Convert: "convert", FFmpeg: "ffmpeg", Oxipng: "oxipng"}
}

// Input is a validated source file plus what was probed about it
type Input struct {
	Path string
	// Orientation is the EXIF orientation tag, 0 when unknown
	Orientation int
}

// Recipe turns input files into conversion commands
type Recipe struct {
	Kind    Kind
	Options Options
	Tools   Tools
}

// NewRecipe creates a recipe using the default tool names
func NewRecipe(kind Kind, opts Options) Recipe {
	return Recipe{Kind: kind, Options: opts, Tools: DefaultTools()}
}

// Extension returns the output file extension (without dot)
func (r Recipe) Extension() string {
	switch r.Kind {
	case Photo:
		return "jpg"
	case Screenshot:
		return "png"
	case Sound:
		return "mp3"
	case Opus:
		return "ogg"
	default:
		return "mp4"
	}
}
