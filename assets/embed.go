package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed easy.txt medium.txt hard.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// EasyList returns the embedded easy tier.
func EasyList() ([]string, error) {
	return readLines("easy.txt")
}

// MediumList returns the embedded medium tier.
func MediumList() ([]string, error) {
	return readLines("medium.txt")
}

// HardList returns the embedded hard tier.
func HardList() ([]string, error) {
	return readLines("hard.txt")
}
