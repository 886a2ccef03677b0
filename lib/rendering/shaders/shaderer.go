package shaders

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fosdem/shaderexample/lib/rendering/gpu"
)

// Shaderer knows where the source of each shader stage lives on disk.
type Shaderer struct {
	VertexPath   string
	FragmentPath string

	log *slog.Logger
}

func NewShaderer(vertexPath, fragmentPath string) *Shaderer {
	return &Shaderer{
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
		log:          slog.With("module", "shaders"),
	}
}

func (s *Shaderer) Path(stage gpu.ShaderStage) string {
	if stage == gpu.FragmentStage {
		return s.FragmentPath
	}
	return s.VertexPath
}

// GetShaderSource returns the text for the given stage. An unreadable
// file produces an empty source; nothing downstream checks for it.
func (s *Shaderer) GetShaderSource(stage gpu.ShaderStage) string {
	path := s.Path(stage)
	source, err := ReadSource(path)
	if err != nil {
		s.log.Debug(fmt.Sprintf("%s shader source unavailable, compiling empty source: %s", stage, err))
		return ""
	}
	s.log.Debug(fmt.Sprintf("read %s shader from %s (%d bytes)", stage, path, len(source)))
	return source
}

// ReadSource reads a shader file line by line, each line preceded by a
// newline, so the first line of the result is always empty. Only the
// '\n' terminators are removed; a trailing '\r' stays part of its line.
func ReadSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	// A final terminator does not start another line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	b.Grow(len(content) + 1)
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String(), nil
}
