package astroenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	// ErrMissingVariable marks a required variable that is unset or empty.
	ErrMissingVariable = errors.New("missing required env variable")
	// ErrInvalidValue marks a value that does not parse as the field's type.
	ErrInvalidValue = errors.New("invalid env value")
)

// Lookup resolves one variable, like os.LookupEnv.
type Lookup func(key string) (string, bool)

// Load loads the given dotenv files (".env" when none are given) and then
// decodes the process environment into cfg. Missing dotenv files are skipped
// and variables already exported take precedence over the files.
func Load(cfg interface{}, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return Decode(cfg, os.LookupEnv)
}

// Decode fills the struct pointed to by cfg through its `env` tags:
//
//	`env:"KEY"`          required
//	`env:"KEY,default"`  optional, default used when KEY is unset or empty
//
// Fields may be string, bool, or any int or float kind; nested structs are
// walked. Every failing field is reported, not just the first.
func Decode(cfg interface{}, lookup Lookup) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("astroenv: expected a pointer to a struct, got %T", cfg)
	}
	return errors.Join(decodeStruct(v.Elem(), lookup)...)
}

func decodeStruct(v reflect.Value, lookup Lookup) []error {
	var errs []error
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		sf := t.Field(i)

		tag, tagged := sf.Tag.Lookup("env")
		if !tagged && field.Kind() == reflect.Struct {
			errs = append(errs, decodeStruct(field, lookup)...)
			continue
		}
		if !tagged || !field.CanSet() {
			continue
		}

		key, def, hasDefault := strings.Cut(tag, ",")
		key = strings.TrimSpace(key)

		raw, ok := lookup(key)
		if !ok || raw == "" {
			if !hasDefault {
				errs = append(errs, fmt.Errorf("%w: %s (field %s)", ErrMissingVariable, key, sf.Name))
				continue
			}
			raw = strings.TrimSpace(def)
		}

		if err := assign(field, raw); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q (field %s): %w", ErrInvalidValue, key, raw, sf.Name, err))
		}
	}

	return errs
}

func assign(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}
	return nil
}
