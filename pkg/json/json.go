package json

import (
	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(input interface{}) ([]byte, error) {
	return api.Marshal(input)
}

func Unmarshal(input []byte, data interface{}) error {
	return api.Unmarshal(input, data)
}
