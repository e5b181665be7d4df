package candihelper

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// URLQueryGetter abstraction of url.Values
type URLQueryGetter interface {
	Get(key string) string
}

func extractTagName(structField reflect.StructField, tags []string) (key string) {
	for _, tag := range tags {
		key = strings.Split(structField.Tag.Get(tag), ",")[0]
		if key == "-" {
			return key
		} else if key != "" {
			break
		}
	}
	if key == "" {
		key = structField.Name
	}
	return
}

// ParseFromQueryParam parse url query string to struct target (string, number, boolean and pointer of them),
// target must in pointer. Field tag "default" used when query value is empty
func ParseFromQueryParam(query URLQueryGetter, target interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	pValue := reflect.ValueOf(target)
	if pValue.Kind() != reflect.Ptr {
		panic(fmt.Errorf("%v is not pointer", pValue.Kind()))
	}
	pValue = pValue.Elem()
	pType := pValue.Type()

	errs := NewMultiError()
	for i := 0; i < pValue.NumField(); i++ {
		field := pValue.Field(i)
		typ := pType.Field(i)
		if typ.PkgPath != "" && !typ.Anonymous {
			continue
		}
		if typ.Anonymous && field.Kind() == reflect.Struct {
			if e, ok := ParseFromQueryParam(query, field.Addr().Interface()).(MultiError); ok {
				errs.Merge(e)
			}
			continue
		}

		key := extractTagName(typ, []string{"query", "json"})
		if key == "-" {
			continue
		}
		v := query.Get(key)
		if v == "" {
			v = typ.Tag.Get("default")
		}
		if v == "" {
			continue
		}

		if e := setQueryValue(v, field); e != nil {
			errs.Append(key, e)
		}
	}

	if errs.HasError() {
		return errs
	}
	return nil
}

func setQueryValue(queryValue string, targetField reflect.Value) error {
	switch targetField.Kind() {
	case reflect.String:
		targetField.SetString(queryValue)
	case reflect.Int, reflect.Int32, reflect.Int64:
		vInt, err := strconv.ParseInt(queryValue, 10, 64)
		if err != nil {
			return fmt.Errorf("Cannot parse '%s' to type number", queryValue)
		}
		targetField.SetInt(vInt)
	case reflect.Bool:
		vBool, err := strconv.ParseBool(queryValue)
		if err != nil {
			return fmt.Errorf("Cannot parse '%s' to type boolean", queryValue)
		}
		targetField.SetBool(vBool)
	case reflect.Float32, reflect.Float64:
		vFloat, err := strconv.ParseFloat(queryValue, 64)
		if err != nil {
			return fmt.Errorf("Cannot parse '%s' to type float", queryValue)
		}
		targetField.SetFloat(vFloat)
	case reflect.Ptr:
		elem := reflect.New(targetField.Type().Elem())
		if err := setQueryValue(queryValue, elem.Elem()); err != nil {
			return err
		}
		targetField.Set(elem)
	}
	return nil
}
