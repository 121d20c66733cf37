package fs

import (
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/ells/internal/fields"
)

// immediateNames are build and project files worth noticing first.
var immediateNames = map[string]bool{
	"makefile":       true,
	"gnumakefile":    true,
	"cmakelists.txt": true,
	"dockerfile":     true,
	"cargo.toml":     true,
	"go.mod":         true,
	"package.json":   true,
	"rakefile":       true,
	"sconstruct":     true,
	"build.gradle":   true,
	"build.xml":      true,
	"pom.xml":        true,
	"build":          true,
	"build.bazel":    true,
	"workspace":      true,
	"meson.build":    true,
	"justfile":       true,
}

var extensionClasses = buildExtensionClasses(map[fields.Class][]string{
	fields.ClassImage: {
		"png", "jfi", "jfif", "jif", "jpe", "jpeg", "jpg", "gif", "bmp",
		"tiff", "tif", "ppm", "pgm", "pbm", "pnm", "webp", "raw", "arw",
		"svg", "stl", "eps", "dvi", "ps", "cbr", "jpf", "cbz", "xpm",
		"ico", "cr2", "orf", "nef", "heif", "avif",
	},
	fields.ClassVideo: {
		"avi", "flv", "m2v", "m4v", "mkv", "mov", "mp4", "mpeg", "mpg",
		"ogm", "ogv", "vob", "wmv", "webm", "m2ts", "heic",
	},
	fields.ClassMusic: {
		"aac", "m4a", "mp3", "ogg", "wma", "mka", "opus",
	},
	fields.ClassLossless: {
		"alac", "ape", "flac", "wav",
	},
	fields.ClassCrypto: {
		"asc", "enc", "gpg", "pgp", "sig", "signature", "pfx", "p12",
		"age", "pem", "crt", "key",
	},
	fields.ClassDocument: {
		"djvu", "doc", "docx", "eml", "fotd", "keynote", "numbers",
		"odp", "odt", "pages", "pdf", "ppt", "pptx", "rtf", "xls", "xlsx",
	},
	fields.ClassCompressed: {
		"zip", "tar", "z", "gz", "bz2", "a", "ar", "7z", "iso", "dmg",
		"tc", "rar", "par", "tgz", "xz", "txz", "lz", "tlz", "lzma",
		"deb", "rpm", "zst",
	},
	fields.ClassTemp: {
		"tmp", "swp", "swo", "swn", "bak", "bkp", "bk",
	},
	fields.ClassCompiled: {
		"class", "elc", "hi", "o", "pyc", "zwc", "ko",
	},
})

func buildExtensionClasses(groups map[fields.Class][]string) map[string]fields.Class {
	out := make(map[string]fields.Class)
	for class, exts := range groups {
		for _, ext := range exts {
			out[ext] = class
		}
	}
	return out
}

// Classify guesses what a file contains from its name. Immediate files are
// checked first, then temporary naming conventions, then the extension.
func Classify(name string) fields.Class {
	lower := strings.ToLower(name)

	if immediateNames[lower] || strings.HasPrefix(lower, "readme") {
		return fields.ClassImmediate
	}

	if strings.HasSuffix(name, "~") || (len(name) > 1 && strings.HasPrefix(name, "#") && strings.HasSuffix(name, "#")) {
		return fields.ClassTemp
	}

	ext := strings.TrimPrefix(filepath.Ext(lower), ".")
	if ext == "" {
		return fields.ClassNone
	}
	return extensionClasses[ext]
}
