// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"strings"
	"time"
)

func modifyFromJson(cfg mutableNodeConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return err
	}

	if err := populateConfig(cfg, data); err != nil {
		return err
	}

	return nil
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableNodeConfig, data map[string]interface{}) error {
	for key, value := range data {

		// policies are plain strings even when they happen to parse as something else
		if key == "processor-unknown-operation-policy" || key == "algod-token" || key == "algod-address" {
			str, ok := value.(string)
			if !ok {
				return errors.Errorf("could not decode value for config key %s: expected a string", key)
			}
			cfg.SetString(convertKeyName(key), str)
			continue
		}

		switch value.(type) {
		case bool:
			cfg.SetBool(convertKeyName(key), value.(bool))
		case float64:
			f := value.(float64)
			if f < 0 || f != float64(uint32(f)) {
				return errors.Errorf("could not decode value for config key %s: %v is not a uint32", key, f)
			}
			cfg.SetUint32(convertKeyName(key), uint32(f))
		case string:
			if duration, decodeError := time.ParseDuration(value.(string)); decodeError != nil {
				cfg.SetString(convertKeyName(key), value.(string))
			} else {
				cfg.SetDuration(convertKeyName(key), duration)
			}
		default:
			return errors.Errorf("could not decode value for config key %s: unsupported type %T", key, value)
		}
	}

	return nil
}

// For main reading several files into one config

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func GetNodeConfigFromFiles(configFiles FilesPaths, httpAddress string, artifactsOutputDir string) (NodeConfig, error) {
	cfg := ForProduction(artifactsOutputDir)

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", configFile)
		}

		err = modifyFromJson(cfg, string(contents))
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse config file %s", configFile)
		}
	}

	// flags win over files
	if httpAddress != "" {
		cfg.SetString(HTTP_ADDRESS, httpAddress)
	}
	if artifactsOutputDir != "" {
		cfg.SetString(ARTIFACTS_OUTPUT_DIR, artifactsOutputDir)
	}

	return cfg, nil
}
