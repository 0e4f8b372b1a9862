package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// MarshalEnv renders the env-tagged fields of the structs pointed to by cs as
// .env lines. Zero values are skipped, slices are joined with the field's
// envSeparator (default ","), and values that godotenv would misread are
// double quoted.
func MarshalEnv(cs ...any) (string, error) {
	var lines []string

	for _, c := range cs {
		v := reflect.ValueOf(c)
		if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
			return "", fmt.Errorf("expected pointer to struct, got %T", c)
		}
		v = v.Elem()
		t := v.Type()

		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			tag := field.Tag.Get("env")
			if tag == "" || !field.IsExported() {
				continue
			}

			// "KEY,required,notEmpty" or "KEY"
			key, _, _ := strings.Cut(tag, ",")
			if key == "" {
				continue
			}

			val := v.Field(i)
			if val.IsZero() || (val.Kind() == reflect.Slice && val.Len() == 0) {
				continue
			}

			sep := field.Tag.Get("envSeparator")
			if sep == "" {
				sep = ","
			}
			lines = append(lines, Line(key, formatValue(val, sep)))
		}
	}

	result := strings.Join(lines, "\n")
	if result != "" {
		result += "\n"
	}
	return result, nil
}

// Line formats one KEY=value .env line.
func Line(key, value string) string {
	return key + "=" + quote(value)
}

func quote(s string) string {
	if strings.ContainsAny(s, " #\"'\\\n\t$") {
		return strconv.Quote(s)
	}
	return s
}

func formatValue(v reflect.Value, sep string) string {
	if v.Type() == durationType {
		return time.Duration(v.Int()).String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice:
		items := make([]string, v.Len())
		for i := range items {
			items[i] = formatValue(v.Index(i), sep)
		}
		return strings.Join(items, sep)
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
