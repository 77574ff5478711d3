// Package config loads configuration structs from a file or remote uri.
package config

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/ti/objectbind"

	"github.com/ti/recordstore/log"
)

// DefaultURI is used when neither the uri argument nor CONFIG_PATH is set.
const DefaultURI = "configs/config.yaml"

// Load binds configPtr from configURI once, without watching for changes. For
// exp: ./configs/config.yaml or etcd://127.0.0.1:2379/config. If configURI is
// empty, CONFIG_PATH and then DefaultURI are used.
//
// When the struct has a Log field with a Level string, the log level is
// applied after binding.
func Load(ctx context.Context, configURI string, configPtr any) error {
	if configURI == "" {
		configURI = os.Getenv("CONFIG_PATH")
		if configURI == "" {
			configURI = DefaultURI
		}
	}
	if _, ok := ctx.Deadline(); !ok {
		var cc context.CancelFunc
		ctx, cc = context.WithTimeout(ctx, 5*time.Second)
		defer cc()
	}
	if _, err := objectbind.Bind(ctx, configPtr, configURI, objectbind.WithoutWatch(true)); err != nil {
		return fmt.Errorf("load config from %s: %w", configURI, err)
	}
	level, ok := logLevel(configPtr)
	if !ok || level == "" {
		return nil
	}
	if err := log.SetLevel(level); err != nil {
		return fmt.Errorf("config log level %q: %w", level, err)
	}
	return nil
}

func logLevel(configPtr any) (string, bool) {
	v := reflect.Indirect(reflect.ValueOf(configPtr))
	if v.Kind() != reflect.Struct {
		return "", false
	}
	logField := reflect.Indirect(v.FieldByName("Log"))
	if !logField.IsValid() || logField.Kind() != reflect.Struct {
		return "", false
	}
	level := logField.FieldByName("Level")
	if !level.IsValid() || level.Kind() != reflect.String {
		return "", false
	}
	return level.String(), true
}
