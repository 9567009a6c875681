package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn as a command. Each parameter of fn consumes one following word;
// pointer parameters are optional.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}

// Params describes the words the command consumes, for usage output.
func (c *Command) Params() string {
	if !c.Func.IsValid() {
		return ""
	}
	var params []string
	for i := range c.Func.Type().NumIn() {
		t := c.Func.Type().In(i)
		if t.Kind() == reflect.Pointer {
			params = append(params, "["+paramName(t.Elem())+"]")
		} else {
			params = append(params, paramName(t))
		}
	}
	return strings.Join(params, " ")
}

func paramName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "N"
	case reflect.Float32, reflect.Float64:
		return "X"
	case reflect.Bool:
		return "BOOL"
	}
	return "STR"
}
