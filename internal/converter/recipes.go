package converter

import (
	"github.com/EdJoPaTo/edc/internal/command"
)

// Build returns the command converting in into output
func (r Recipe) Build(in Input, output string) *command.Command {
	switch r.Kind {
	case Photo:
		return r.photo(in, output)
	case Screenshot:
		return r.screenshot(in, output)
	case Sound:
		return r.ffmpeg("-vn").Args("-i", in.Path).Arg(output)
	case Opus:
		return r.ffmpeg("-vn").Args("-i", in.Path).Args("-c:a", "libopus").Arg(output)
	case Video:
		return r.ffmpeg().Args("-i", in.Path).Arg(output)
	case GifIsh:
		return r.ffmpeg("-an").Args("-i", in.Path).Arg(output)
	default:
		panic("converter: unknown recipe " + r.Kind.String())
	}
}

func (r Recipe) photo(in Input, output string) *command.Command {
	cmd := command.New(r.Tools.Convert).Arg(in.Path)

	if r.Options.AutoOrient && in.Orientation > 1 {
		cmd.Arg("-auto-orient")
	}

	cmd.Args("-background", "black", "-alpha", "remove")
	cmd.Args("-sampling-factor", "4:2:0")

	if r.Options.Strip {
		cmd.Arg("-strip")
	}

	if r.Options.Resize {
		size := r.Options.ResizeSize
		if size == "" {
			size = DefaultResizeSize
		}
		cmd.Args("-resize", size)
	}

	return cmd.Args("-quality", "85").Arg(output)
}

func (r Recipe) screenshot(in Input, output string) *command.Command {
	cmd := command.New(r.Tools.Oxipng)

	if r.Options.Pedantic {
		cmd.Arg("-Z")
	}

	if r.Options.Strip {
		cmd.Args("--strip", "safe")
	}

	return cmd.Arg(in.Path).Args("--out", output)
}

// ffmpeg starts every transcode with quiet logging plus progress stats
func (r Recipe) ffmpeg(streamFlags ...string) *command.Command {
	return command.New(r.Tools.FFmpeg).Args("-v", "error").Arg("-stats").Args(streamFlags...)
}
