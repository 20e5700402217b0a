package converter

// Info describes a recipe for the command line
type Info struct {
	Kind    Kind
	Name    string
	Aliases []string
	Short   string
}

var builtins = []Info{
	{Photo, "photo", []string{"jpg", "image"}, "jpg - Converts towards photos with many colors and without transparency"},
	{Screenshot, "screenshot", []string{"png"}, "png - Compresses pngs"},
	{Sound, "sound", []string{"mp3"}, "mp3 - Extracts the audio of a file into mp3"},
	{Opus, "opus", []string{"ogg"}, "ogg - Extracts the audio of a file into opus"},
	{Video, "video", []string{"mp4"}, "mp4 - Transcodes videos into mp4"},
	{GifIsh, "gif-ish", []string{"gifish", "gif"}, "mp4 - Transcodes into a silent mp4 like a gif"},
}

// Builtins returns all recipes in display order
func Builtins() []Info {
	result := make([]Info, len(builtins))
	copy(result, builtins)
	return result
}
