/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package pool

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownMessageType   = errors.New("unknown message type")
	ErrDuplicateMessageType = errors.New("duplicate message type")
)

// Config is the registry configuration as it is stored in yaml:
//
//	depth_reporting: true
//	initial_counts:
//	  google.protobuf.StringValue: 100
//	  "*mypkg.MyMessage": 5
type Config struct {
	// message type name -> initial pool size
	// name is either reflect type name (e.g. *mypkg.MyMessage) or protobuf full name (e.g. google.protobuf.StringValue)
	InitialCounts  map[string]int `yaml:"initial_counts"`
	DepthReporting bool           `yaml:"depth_reporting"`
}

func ParseConfig(data []byte) (cfg Config, err error) {
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse pool config: %w", err)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read pool config: %w", err)
	}
	return ParseConfig(data)
}

// Configure applies the config to the registry. Names from the config are resolved among msgTypes
// registry is not changed if any name is not resolved, if two msgTypes share a name
// or if the same type is configured under two names
func (r *Registry) Configure(cfg Config, msgTypes ...reflect.Type) error {
	byName := map[string]reflect.Type{}
	addName := func(name string, msgType reflect.Type) error {
		if prev, ok := byName[name]; ok && prev != msgType {
			return fmt.Errorf("%w: name %s is shared by different types", ErrDuplicateMessageType, name)
		}
		byName[name] = msgType
		return nil
	}
	for _, msgType := range msgTypes {
		if err := addName(msgType.String(), msgType); err != nil {
			return err
		}
		if fullName, ok := protoFullName(msgType); ok {
			if err := addName(fullName, msgType); err != nil {
				return err
			}
		}
	}
	counts := make(map[reflect.Type]int, len(cfg.InitialCounts))
	configuredAs := make(map[reflect.Type]string, len(cfg.InitialCounts))
	for name, count := range cfg.InitialCounts {
		msgType, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownMessageType, name)
		}
		if prevName, ok := configuredAs[msgType]; ok {
			return fmt.Errorf("%w: %s is configured as both %s and %s", ErrDuplicateMessageType, msgType, prevName, name)
		}
		configuredAs[msgType] = name
		counts[msgType] = count
	}
	r.SetInitialCounts(counts)
	r.SetDepthReporting(cfg.DepthReporting)
	return nil
}

func protoFullName(msgType reflect.Type) (string, bool) {
	if msgType.Kind() != reflect.Pointer {
		return "", false
	}
	msg, ok := reflect.New(msgType.Elem()).Interface().(proto.Message)
	if !ok {
		return "", false
	}
	return string(msg.ProtoReflect().Descriptor().FullName()), true
}
