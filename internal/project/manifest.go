package project

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// Manifest — разобранный и проверенный sbx.toml. Нулевое значение пригодно
// к использованию: проект без манифеста работает с настройками по умолчанию.
type Manifest struct {
	Path string // путь манифеста; пусто, если sbx.toml не найден
	Root string // каталог манифеста

	Name           string   // [package].name
	CompilerPath   string   // [compiler].path
	CompilerFlags  []string // [compiler].flags
	OutputDir      string   // [compiler].output_dir, развёрнутый против Root
	MaxDiagnostics int      // [check].max_diagnostics; 0 — по умолчанию вызывающего
}

type manifestFile struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Compiler struct {
		Path      string   `toml:"path"`
		Flags     []string `toml:"flags"`
		OutputDir string   `toml:"output_dir"`
	} `toml:"compiler"`
	Check struct {
		MaxDiagnostics int `toml:"max_diagnostics"`
	} `toml:"check"`
}

// Load parses and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	m := &Manifest{
		Path: path,
		Root: filepath.Dir(path),
	}

	if meta.IsDefined("package", "name") {
		name := strings.TrimSpace(cfg.Package.Name)
		if !IsValidPackageName(name) {
			return nil, fmt.Errorf("%s: invalid [package].name %q", path, cfg.Package.Name)
		}
		m.Name = name
	}

	if meta.IsDefined("compiler", "path") {
		compilerPath := strings.TrimSpace(cfg.Compiler.Path)
		if compilerPath == "" {
			return nil, fmt.Errorf("%s: empty [compiler].path", path)
		}
		m.CompilerPath = compilerPath
	}
	for _, flag := range cfg.Compiler.Flags {
		if strings.TrimSpace(flag) == "" {
			return nil, fmt.Errorf("%s: empty entry in [compiler].flags", path)
		}
	}
	m.CompilerFlags = cfg.Compiler.Flags

	if meta.IsDefined("compiler", "output_dir") {
		outDir, err := resolveOutputDir(m.Root, cfg.Compiler.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		m.OutputDir = outDir
	}

	if cfg.Check.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [check].max_diagnostics must be non-negative", path)
	}
	m.MaxDiagnostics = cfg.Check.MaxDiagnostics

	return m, nil
}

// LoadFromDir ищет sbx.toml вверх от startDir. Отсутствие манифеста —
// не ошибка: возвращается нулевая конфигурация.
func LoadFromDir(startDir string) (*Manifest, error) {
	path, ok, err := FindSbxToml(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Manifest{}, nil
	}
	return Load(path)
}

// resolveOutputDir validates and resolves [compiler].output_dir against the
// project root. Каталог обязан быть относительным и не выходить за корень;
// существование не требуется — его создаёт компилятор.
func resolveOutputDir(root, dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", fmt.Errorf("empty [compiler].output_dir")
	}
	if filepath.IsAbs(dir) {
		return "", fmt.Errorf("invalid [compiler].output_dir %q: must be relative", dir)
	}
	clean := filepath.Clean(filepath.FromSlash(dir))
	if clean == "." {
		return root, nil
	}
	resolved := filepath.Join(root, clean)
	if !pathWithin(root, resolved) {
		return "", fmt.Errorf("invalid [compiler].output_dir %q: escapes project root", dir)
	}
	return resolved, nil
}

// IsValidPackageName reports whether name is a valid package identifier:
// ASCII, первая руна — буква или '_', дальше буквы, цифры, '_' или '-'.
func IsValidPackageName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		}
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func pathWithin(root, path string) bool {
	if root == "" || path == "" {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return !strings.HasPrefix(rel, "..") && rel != ".."
}

// Runner-facing accessors: пустые значения означают «умолчания раннера».

// CompilerSettings возвращает настройки внешнего компилятора из манифеста.
func (m *Manifest) CompilerSettings() (path string, flags []string, outputDir string) {
	if m == nil {
		return "", nil, ""
	}
	return m.CompilerPath, m.CompilerFlags, m.OutputDir
}

// DiagnosticLimit returns the configured diagnostics cap, or fallback when
// the manifest does not set one.
func (m *Manifest) DiagnosticLimit(fallback int) int {
	if m == nil || m.MaxDiagnostics == 0 {
		return fallback
	}
	return m.MaxDiagnostics
}
