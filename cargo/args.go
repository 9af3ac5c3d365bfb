package cargo

import (
	"strings"
)

// Selection captures the `cargo build` arguments that must also shape the
// metadata query, so the dependency graph reflects the exact build
// configuration. Everything else in the argument list is forwarded to
// cargo untouched and ignored here.
type Selection struct {
	Target            string
	MessageFormat     string
	Features          []string
	AllFeatures       bool
	NoDefaultFeatures bool
}

// ScanBuildArgs leniently scans forwarded build arguments. Both the
// "--flag value" and "--flag=value" spellings are recognized; feature
// lists may be comma or space separated and the flag may repeat.
func ScanBuildArgs(args []string) *Selection {
	selection := &Selection{}
	expecting := ""
	for _, arg := range args {
		if expecting != "" {
			selection.accept(expecting, arg)
			expecting = ""
			continue
		}
		switch {
		case arg == "--all-features":
			selection.AllFeatures = true
		case arg == "--no-default-features":
			selection.NoDefaultFeatures = true
		case arg == "--target" || arg == "--message-format" || arg == "--features" || arg == "-F":
			expecting = arg
		case strings.HasPrefix(arg, "--target="):
			selection.accept("--target", arg[len("--target="):])
		case strings.HasPrefix(arg, "--message-format="):
			selection.accept("--message-format", arg[len("--message-format="):])
		case strings.HasPrefix(arg, "--features="):
			selection.accept("--features", arg[len("--features="):])
		case strings.HasPrefix(arg, "-F="):
			selection.accept("--features", arg[len("-F="):])
		}
	}
	return selection
}

func (it *Selection) accept(flag, value string) {
	switch flag {
	case "--target":
		it.Target = value
	case "--message-format":
		it.MessageFormat = value
	case "--features", "-F":
		for _, feature := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' '
		}) {
			if feature != "" {
				it.Features = append(it.Features, feature)
			}
		}
	}
}

// JsonMessages tells whether the user already requested a line-delimited
// json message format of their own.
func (it *Selection) JsonMessages() bool {
	return strings.HasPrefix(it.MessageFormat, "json")
}

// MetadataArgs translates the selection into `cargo metadata` arguments.
func (it *Selection) MetadataArgs() []string {
	args := []string{}
	if it.AllFeatures {
		args = append(args, "--all-features")
	}
	if it.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if len(it.Features) > 0 {
		args = append(args, "--features", strings.Join(it.Features, ","))
	}
	if it.Target != "" {
		args = append(args, "--filter-platform", it.Target)
	}
	return args
}
