package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// decodeObject reads a JSON object body, keeping numbers as json.Number.
func decodeObject(r *http.Request) (map[string]any, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var body map[string]any
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errors.New("body is not a JSON object")
	}
	return body, nil
}

// truthy reports whether a decoded JSON value counts as present:
// null, false, 0, "" and empty arrays or objects do not.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case json.Number:
		f, err := value.Float64()
		return err != nil || f != 0
	case float64:
		return value != 0
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	default:
		return true
	}
}

// asInt converts a JSON number or numeric string to an integer.
func asInt(v any) (int64, error) {
	switch value := v.(type) {
	case json.Number:
		return numberToInt(value)
	case float64:
		return floatToInt(value)
	case string:
		return numberToInt(json.Number(strings.TrimSpace(value)))
	default:
		return 0, fmt.Errorf("%v is not an integer", v)
	}
}

func numberToInt(n json.Number) (int64, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", string(n))
	}
	return floatToInt(f)
}

func floatToInt(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= 1<<63 || f < -1<<63 {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int64(f), nil
}
