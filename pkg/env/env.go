package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	pkgstrings "github.com/klwxsrx/repertoire-hero/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

// LoadFiles loads dotenv files into the process environment without overriding
// variables that are already set. Missing files are ignored.
func LoadFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	return nil
}

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}
	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return parseValue[T](key, str)
}

func ParseOptional[T pkgstrings.SupportedValueParsingTypes](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(str) == "" {
		return nil, nil
	}

	value, err := parseValue[T](key, str)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func ParseWithDefault[T pkgstrings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	value, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if value == nil {
		return defaultValue, nil
	}

	return *value, nil
}

func parseValue[T pkgstrings.SupportedValueParsingTypes](key, str string) (T, error) {
	value, err := pkgstrings.ParseTypedValue[T](strings.TrimSpace(str))
	if err != nil {
		return value, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return value, nil
}
