package config

// The module format is inferred or declared by the resolution layer before a
// module reaches the scan pass: either from the file extension (".cjs",
// ".mjs") or from the "type" field of the enclosing "package.json". Explicit
// export syntax seen during the scan always wins over these hints.
type ModuleFormat uint8

const (
	FormatUnknown ModuleFormat = iota

	// ".cjs" or ".cts" extension
	FormatCommonJS

	// "type: commonjs" in the enclosing "package.json"
	FormatCommonJSPackageJSON

	// ".mjs" or ".mts" extension
	FormatESM

	// "type: module" in the enclosing "package.json"
	FormatESMPackageJSON
)

func (format ModuleFormat) IsCommonJS() bool {
	return format == FormatCommonJS || format == FormatCommonJSPackageJSON
}

func (format ModuleFormat) IsESM() bool {
	return format == FormatESM || format == FormatESMPackageJSON
}

func (format ModuleFormat) String() string {
	switch format {
	case FormatCommonJS:
		return "cjs"
	case FormatCommonJSPackageJSON:
		return "commonjs"
	case FormatESM:
		return "mjs"
	case FormatESMPackageJSON:
		return "module"
	default:
		return "unknown"
	}
}

// Options for scanning a single module
type ScanOptions struct {
	Format ModuleFormat
}
