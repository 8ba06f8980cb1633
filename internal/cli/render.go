package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/dirmap/internal/logging"
	"github.com/vvka-141/dirmap/pkg/dirmap"
)

var (
	dirStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// printer writes command output, styling it only for terminals.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, styled: logging.ColorEnabled(w)}
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// names prints one entry name per line; names in dirs are styled as directories.
func (p *printer) names(names []string, dirs map[string]bool) {
	for _, name := range names {
		if dirs[name] {
			name = p.render(dirStyle, name)
		}
		fmt.Fprintln(p.w, name)
	}
}

// value prints the result of a Get.
//   - Content is written verbatim
//   - a directory prints its listing
//   - a List prints each element under a numbered header
func (p *printer) value(v dirmap.Value, showHidden bool) error {
	switch v := v.(type) {
	case dirmap.Content:
		fmt.Fprint(p.w, string(v))
	case *dirmap.DirectoryMap:
		keys, err := v.Keys(showHidden)
		if err != nil {
			return err
		}
		dirs, err := p.dirSet(v, showHidden)
		if err != nil {
			return err
		}
		p.names(keys, dirs)
	case dirmap.List:
		for i, item := range v {
			fmt.Fprintln(p.w, p.render(headerStyle, fmt.Sprintf("==> %d <==", i)))
			if err := p.value(item, showHidden); err != nil {
				return err
			}
			if c, ok := item.(dirmap.Content); ok && !strings.HasSuffix(string(c), "\n") {
				fmt.Fprintln(p.w)
			}
		}
	default:
		return fmt.Errorf("%w: unexpected value %T", dirmap.ErrInvalidIndexKind, v)
	}
	return nil
}

// dirSet returns the directory entries of d, or nil when output is unstyled.
func (p *printer) dirSet(d *dirmap.DirectoryMap, showHidden bool) (map[string]bool, error) {
	if !p.styled {
		return nil, nil
	}
	dirs, err := d.Dirs(showHidden)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(dirs))
	for _, name := range dirs {
		set[name] = true
	}
	return set, nil
}
