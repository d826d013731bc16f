package docs

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
)

//go:embed content/*.md
var contentFS embed.FS

func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	var topics []string
	for _, path := range entries {
		base := filepath.Base(path)
		topic := strings.TrimSuffix(base, filepath.Ext(base))
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

func Get(topic string) (string, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", false
	}
	topic = strings.ToLower(topic)
	b, err := contentFS.ReadFile("content/" + topic + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Style names accepted by Render.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	// StyleNoTTY renders without colors, for pipes and files.
	StyleNoTTY = "notty"
)

var (
	renderersMu sync.Mutex
	// Renderers are cached by style + wrap width. Building one with
	// WithAutoStyle may query the terminal, so styles are always explicit.
	renderers = map[string]*glamour.TermRenderer{}
)

// Render renders markdown for a terminal of the given width. On renderer
// errors the markdown is returned unchanged.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	key := style + ":" + strconv.Itoa(width)

	renderersMu.Lock()
	r := renderers[key]
	if r == nil {
		opts := []glamour.TermRendererOption{
			glamour.WithStyles(styleConfig(style)),
			glamour.WithWordWrap(width),
		}
		if style == StyleNoTTY {
			opts = append(opts, glamour.WithColorProfile(termenv.Ascii))
		}
		rr, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			renderersMu.Unlock()
			return md
		}
		renderers[key] = rr
		r = rr
	}
	renderersMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func styleConfig(style string) ansi.StyleConfig {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleLight:
		return styles.LightStyleConfig
	case StyleNoTTY:
		return styles.NoTTYStyleConfig
	default:
		cfg := styles.DarkStyleConfig
		// Faint block quotes are hard to read on dark terminals.
		faint := false
		cfg.BlockQuote.Faint = &faint
		return cfg
	}
}
