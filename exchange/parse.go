package exchange

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/htsegen/supercell"
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "#"

// Parse reads six-column integer rows "class local remote dx dy dz".
// The returned table is validated.
// Complexity: O(bytes).
func Parse(r io.Reader) (*Table, error) {
	var templates []Template
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentMarker); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != Columns {
			return nil, fmt.Errorf("%s: line %d: got %d columns, want %d: %w",
				methodParse, line, len(fields), Columns, ErrSyntax)
		}
		var v [Columns]int
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: column %d: %q is not an integer: %w",
					methodParse, line, i+1, f, ErrSyntax)
			}
			v[i] = n
		}
		templates = append(templates, Template{
			Class:  v[0],
			Local:  v[1],
			Remote: v[2],
			Offset: supercell.Vec{X: v[3], Y: v[4], Z: v[5]},
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: read: %w", methodParse, err)
	}

	tb := &Table{Templates: templates}
	if err := tb.Validate(); err != nil {
		return nil, err
	}

	return tb, nil
}

// yamlTable is the on-disk YAML layout.
type yamlTable struct {
	Templates []yamlTemplate `yaml:"templates"`
}

type yamlTemplate struct {
	Class  int   `yaml:"class"`
	Local  int   `yaml:"local"`
	Remote int   `yaml:"remote"`
	Offset []int `yaml:"offset"`
}

// LoadYAML decodes a YAML template document. Unknown keys are rejected.
func LoadYAML(r io.Reader) (*Table, error) {
	var doc yamlTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %v: %w", methodLoadYAML, err, ErrSyntax)
	}

	templates := make([]Template, 0, len(doc.Templates))
	for i, yt := range doc.Templates {
		if len(yt.Offset) != 3 {
			return nil, fmt.Errorf("%s: template %d: offset has %d components, want 3: %w",
				methodLoadYAML, i, len(yt.Offset), ErrSyntax)
		}
		templates = append(templates, Template{
			Class:  yt.Class,
			Local:  yt.Local,
			Remote: yt.Remote,
			Offset: supercell.Vec{X: yt.Offset[0], Y: yt.Offset[1], Z: yt.Offset[2]},
		})
	}

	tb := &Table{Templates: templates}
	if err := tb.Validate(); err != nil {
		return nil, err
	}

	return tb, nil
}

// Load opens path and decodes it as YAML for .yaml/.yml and as six-column
// text otherwise.
func Load(path string) (*Table, error) {
	decode := Parse
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = LoadYAML
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	defer f.Close()

	tb, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodLoad, path, err)
	}

	return tb, nil
}
