package config

import (
	"encoding"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	errUnsupportedConfigFormat = errors.New("unsupported config file format")
	errConfigFileIsDir         = errors.New("config file path must be a file")
	errNilTarget               = errors.New("target must be a non-nil pointer to a struct")
)

const tagName = "k"

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// Loader merges defaults, configuration files, environment variables and flags.
// Later sources override earlier ones in that order.
type Loader struct {
	opts options
}

type options struct {
	EnvPrefix     string
	ConfigFileEnv string
	Defaults      map[string]any
	Files         []configFile
	FlagSet       *flag.FlagSet
}

type configFile struct {
	path     string
	optional bool
}

// Option configures Loader behavior.
type Option func(*options)

// WithEnvPrefix configures the prefix applied to environment variables.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		prefix = strings.TrimSpace(prefix)
		if prefix != "" && !strings.HasSuffix(prefix, "_") {
			prefix += "_"
		}
		o.EnvPrefix = prefix
	}
}

// WithConfigFileEnv sets the environment variable naming an extra configuration file.
func WithConfigFileEnv(key string) Option {
	return func(o *options) {
		o.ConfigFileEnv = strings.TrimSpace(key)
	}
}

// WithDefaults supplies default values expressed using dotted keys.
func WithDefaults(values map[string]any) Option {
	return func(o *options) {
		if o.Defaults == nil {
			o.Defaults = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.Defaults[k] = v
		}
	}
}

// WithFiles adds configuration files that must exist.
func WithFiles(paths ...string) Option {
	return func(o *options) {
		for _, path := range paths {
			o.Files = append(o.Files, configFile{path: path})
		}
	}
}

// WithOptionalFiles adds configuration files that are skipped when absent.
func WithOptionalFiles(paths ...string) Option {
	return func(o *options) {
		for _, path := range paths {
			o.Files = append(o.Files, configFile{path: path, optional: true})
		}
	}
}

// WithFlagSet enables explicitly set flags as a configuration source.
// Flag names map to dotted keys, "env-file" becomes "env.file".
func WithFlagSet(fs *flag.FlagSet) Option {
	return func(o *options) {
		o.FlagSet = fs
	}
}

// New constructs a configuration loader with the supplied options applied.
func New(opts ...Option) *Loader {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Loader{opts: o}
}

// LoadInto unmarshals the configuration into a new value of type T.
func LoadInto[T any](loader *Loader) (*T, error) {
	var target T
	if err := loader.Unmarshal(&target); err != nil {
		return nil, err
	}

	return &target, nil
}

// Unmarshal populates target, a pointer to a struct tagged with `k`.
// String values are decoded into fields implementing encoding.TextUnmarshaler.
func (l *Loader) Unmarshal(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errNilTarget
	}

	k := koanf.New(".")
	if err := l.load(k, collectKeys(rv.Elem().Type())); err != nil {
		return err
	}

	conf := koanf.UnmarshalConf{
		Tag: tagName,
		DecoderConfig: &mapstructure.DecoderConfig{
			TagName:          tagName,
			Result:           target,
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", target, conf); err != nil {
		return fmt.Errorf("unmarshal configuration: %w", err)
	}

	return nil
}

func (l *Loader) load(k *koanf.Koanf, keys []string) error {
	if err := loadMap(k, "defaults", l.opts.Defaults); err != nil {
		return err
	}

	files := l.opts.Files
	if l.opts.ConfigFileEnv != "" {
		if path := strings.TrimSpace(os.Getenv(l.opts.ConfigFileEnv)); path != "" {
			files = append(files, configFile{path: path})
		}
	}
	for _, f := range files {
		if err := loadFile(k, f); err != nil {
			return err
		}
	}

	env := make(map[string]any)
	for _, key := range keys {
		name := l.opts.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if val, ok := os.LookupEnv(name); ok {
			env[key] = val
		}
	}
	if err := loadMap(k, "environment", env); err != nil {
		return err
	}

	flags := make(map[string]any)
	if l.opts.FlagSet != nil {
		l.opts.FlagSet.Visit(func(f *flag.Flag) {
			flags[flagKey(f.Name)] = f.Value.String()
		})
	}

	return loadMap(k, "flags", flags)
}

func loadMap(k *koanf.Koanf, source string, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return fmt.Errorf("load %s: %w", source, err)
	}
	return nil
}

func loadFile(k *koanf.Koanf, f configFile) error {
	path := filepath.Clean(strings.TrimSpace(f.path))

	info, err := os.Stat(path)
	switch {
	case err != nil && f.optional && errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("stat config file %q: %w", path, err)
	case info.IsDir():
		return fmt.Errorf("config file %q: %w", path, errConfigFileIsDir)
	}

	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return fmt.Errorf("config file %q: %w: %q", path, errUnsupportedConfigFormat, ext)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("load config file %q: %w", path, err)
	}
	return nil
}

func collectKeys(t reflect.Type) []string {
	acc := make(map[string]struct{})
	collectKeysInto(t, "", acc)

	out := make([]string, 0, len(acc))
	for key := range acc {
		out = append(out, key)
	}
	sort.Strings(out)

	return out
}

func collectKeysInto(t reflect.Type, prefix string, acc map[string]struct{}) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := strings.Split(field.Tag.Get(tagName), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		ft := field.Type
		if ft.Kind() == reflect.Struct && !reflect.PointerTo(ft).Implements(textUnmarshalerType) {
			collectKeysInto(ft, name, acc)
			continue
		}
		acc[name] = struct{}{}
	}
}

// flagKey maps a flag name to a dotted key: "log-level" and "log_level" become "log.level".
func flagKey(name string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return '.'
		}
		return r
	}, strings.TrimSpace(name)))
}
