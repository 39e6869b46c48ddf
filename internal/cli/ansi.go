package cli

import "strconv"

// sgr wraps text with a Select Graphic Rendition escape and a reset.
func sgr(params, text string) string {
	return "\033[" + params + "m" + text + "\033[0m"
}

func bold(text string) string {
	return sgr("1", text)
}

func dim(text string) string {
	return sgr("2", text)
}

// fg colors text with a 256-color foreground.
func fg(color int, text string) string {
	return sgr("38;5;"+strconv.Itoa(color), text)
}

// fgBold is fg in bold.
func fgBold(color int, text string) string {
	return sgr("1;38;5;"+strconv.Itoa(color), text)
}
