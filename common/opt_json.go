// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"encoding/json"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OptBooleanDefaultTrue is a configuration flag that reads as true unless it
// was explicitly set to false.
type OptBooleanDefaultTrue struct {
	val *bool
}

func Bool(val bool) OptBooleanDefaultTrue {
	return OptBooleanDefaultTrue{&val}
}

func (o OptBooleanDefaultTrue) Get() bool {
	if o.val != nil {
		return *o.val
	}

	return true
}

func (o OptBooleanDefaultTrue) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Get())
}

func (o OptBooleanDefaultTrue) MarshalYAML() (any, error) {
	return o.Get(), nil
}

func (o *OptBooleanDefaultTrue) UnmarshalJSON(data []byte) error {
	switch s := string(data); s {
	case "null", "", `""`:
		o.val = nil
	case "true", "false":
		b := s == "true"
		o.val = &b
	default:
		return errors.New("invalid boolean value: " + s)
	}
	return nil
}

func (o *OptBooleanDefaultTrue) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		o.val = nil
		return nil
	}
	var b bool
	if err := node.Decode(&b); err != nil {
		return errors.Wrapf(err, "invalid boolean value: '%s'", node.Value)
	}
	o.val = &b
	return nil
}

// OptBooleanViperHook lets viper decode plain booleans into an
// OptBooleanDefaultTrue field.
func OptBooleanViperHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t == reflect.TypeOf(OptBooleanDefaultTrue{}) {
			b, ok := data.(bool)
			if !ok {
				return nil, errors.Errorf("invalid boolean value: '%v'", data)
			}

			return Bool(b), nil
		}

		return data, nil
	}
}
