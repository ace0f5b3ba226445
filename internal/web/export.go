package web

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/oceaniq/oceaniq/internal/progress"
	"github.com/oceaniq/oceaniq/internal/router"
)

// exportFile is one file of the static site: its slash path below the
// output directory and how to produce its bytes.
type exportFile struct {
	name   string
	render func(*bytes.Buffer) error
}

// Export pre-renders every page, chart and static asset into dir so the site
// can be served by any file server. Pages start in their default state and
// are marked static: the insights selectors, map selection and sign-in forms
// run in the browser, export requests are disabled and the chat assistant is
// unavailable. It returns the number of files written.
func (s *Site) Export(dir string, rep progress.Reporter) (int, error) {
	files, err := s.exportFiles()
	if err != nil {
		return 0, err
	}

	rep.Start(len(files))
	defer rep.Finish()

	var buf bytes.Buffer
	for i, f := range files {
		buf.Reset()
		if err := f.render(&buf); err != nil {
			return i, fmt.Errorf("rendering %s: %w", f.name, err)
		}
		dst := filepath.Join(dir, filepath.FromSlash(f.name))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return i, fmt.Errorf("creating directory for %s: %w", f.name, err)
		}
		if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
			return i, fmt.Errorf("writing %s: %w", f.name, err)
		}
		rep.Update(i+1, f.name)
	}
	return len(files), nil
}

func (s *Site) exportFiles() ([]exportFile, error) {
	var files []exportFile
	for _, rt := range router.Routes() {
		files = append(files, exportFile{
			name: pageFile(rt.Path),
			render: func(b *bytes.Buffer) error {
				return s.render(b, rt, nil, true)
			},
		})
	}
	for _, p := range ChartPaths() {
		files = append(files, exportFile{
			name: strings.TrimPrefix(p, "/"),
			render: func(b *bytes.Buffer) error {
				return s.RenderChart(b, p)
			},
		})
	}

	static := Static()
	err := fs.WalkDir(static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		files = append(files, exportFile{
			name: path.Join("static", name),
			render: func(b *bytes.Buffer) error {
				data, err := fs.ReadFile(static, name)
				b.Write(data)
				return err
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing static assets: %w", err)
	}
	return files, nil
}

// pageFile maps a route path to the index file a static server resolves it
// to.
func pageFile(p string) string {
	return path.Join(strings.TrimPrefix(p, "/"), "index.html")
}
