/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package viperutil

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var logger = flogging.MustGetLogger("viperutil")

// ConfigPathEnvVar names the directory searched first for config files.
const ConfigPathEnvVar = "VCP_CFG_PATH"

// ConfigPaths returns the paths from environment and
// defaults which are CWD and /etc/hyperledger/vcp.
func ConfigPaths() []string {
	var paths []string
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		paths = append(paths, p)
	}
	return append(paths, ".", "/etc/hyperledger/vcp")
}

// ConfigParser reads a yaml config file and decodes it into a struct,
// applying environment overrides on the way.
type ConfigParser struct {
	configPaths []string
	configName  string
	configFile  string
	envPrefix   string

	config map[string]interface{}
}

// New creates a ConfigParser instance
func New() *ConfigParser {
	return &ConfigParser{
		config: map[string]interface{}{},
	}
}

// AddConfigPaths keeps a list of path to search the relevant
// config file. Multiple paths can be provided.
func (c *ConfigParser) AddConfigPaths(cfgPaths ...string) {
	c.configPaths = append(c.configPaths, cfgPaths...)
}

// SetConfigName provides the configuration file name stem. Unless
// SetEnvPrefix is called, the upper-cased name is also the environment
// override prefix.
func (c *ConfigParser) SetConfigName(in string) {
	c.configName = in
}

// SetConfigFile uses an explicit file instead of searching the config paths.
func (c *ConfigParser) SetConfigFile(file string) {
	c.configFile = file
}

// SetEnvPrefix sets the prefix of environment overrides.
func (c *ConfigParser) SetEnvPrefix(prefix string) {
	c.envPrefix = prefix
}

// ConfigFileUsed returns the used configFile.
func (c *ConfigParser) ConfigFileUsed() string {
	return c.configFile
}

func (c *ConfigParser) searchInPath(in string) (filename string) {
	for _, ext := range []string{"yaml", "yml"} {
		fullPath := filepath.Join(in, c.configName+"."+ext)
		_, err := os.Stat(fullPath)
		if err == nil {
			return fullPath
		}
	}
	return ""
}

func (c *ConfigParser) findConfigFile() string {
	paths := c.configPaths
	if len(paths) == 0 {
		paths = ConfigPaths()
	}
	for _, cp := range paths {
		file := c.searchInPath(cp)
		if file != "" {
			return file
		}
	}
	return ""
}

func (c *ConfigParser) getConfigFile() string {
	if c.configFile != "" {
		return c.configFile
	}

	c.configFile = c.findConfigFile()
	return c.configFile
}

// ReadInConfig reads and unmarshals the config file.
func (c *ConfigParser) ReadInConfig() error {
	cf := c.getConfigFile()
	if cf == "" {
		return errors.Errorf("config file %s not found in %v", c.configName, c.searchPaths())
	}
	logger.Debugf("Attempting to open the config file: %s", cf)
	file, err := os.Open(cf)
	if err != nil {
		logger.Errorf("Unable to open the config file: %s", cf)
		return err
	}
	defer file.Close()

	return c.ReadConfig(file)
}

func (c *ConfigParser) searchPaths() []string {
	if len(c.configPaths) == 0 {
		return ConfigPaths()
	}
	return c.configPaths
}

// ReadConfig parses the buffer and initializes the config.
func (c *ConfigParser) ReadConfig(in io.Reader) error {
	err := yaml.NewDecoder(in).Decode(c.config)
	if err == io.EOF {
		return nil
	}
	return err
}

func (c *ConfigParser) getFromEnv(key string) string {
	envKey := key
	prefix := c.envPrefix
	if prefix == "" {
		prefix = c.configName
	}
	if prefix != "" {
		envKey = prefix + "_" + envKey
	}
	envKey = strings.ToUpper(envKey)
	envKey = strings.ReplaceAll(envKey, ".", "_")
	return os.Getenv(envKey)
}

type envGetter func(key string) string

// getKeysRecursively merges the parsed yaml tree with environment overrides.
// Struct fields absent from the file are still looked up in the environment.
func getKeysRecursively(base string, getenv envGetter, nodeKeys map[string]interface{}, oType reflect.Type) map[string]interface{} {
	subTypes := map[string]reflect.Type{}

	if oType != nil && oType.Kind() == reflect.Ptr {
		oType = oType.Elem()
	}
	if oType != nil && oType.Kind() == reflect.Struct {
	outer:
		for i := 0; i < oType.NumField(); i++ {
			fieldName := oType.Field(i).Name
			fieldType := oType.Field(i).Type

			for key := range nodeKeys {
				if strings.EqualFold(fieldName, key) {
					subTypes[key] = fieldType
					continue outer
				}
			}

			subTypes[fieldName] = fieldType
			nodeKeys[fieldName] = nil
		}
	}

	result := make(map[string]interface{})
	for key, val := range nodeKeys {
		fqKey := base + key

		if override := getenv(fqKey); override != "" {
			val = override
		}

		switch val := val.(type) {
		case map[string]interface{}:
			result[key] = getKeysRecursively(fqKey+".", getenv, val, subTypes[key])

		case map[interface{}]interface{}:
			result[key] = getKeysRecursively(fqKey+".", getenv, toMapStringInterface(val), subTypes[key])

		case nil:
			if st := subTypes[key]; st != nil && (st.Kind() == reflect.Struct || (st.Kind() == reflect.Ptr && st.Elem().Kind() == reflect.Struct)) {
				if nested := getKeysRecursively(fqKey+".", getenv, map[string]interface{}{}, st); len(nested) > 0 {
					result[key] = nested
				}
			}

		default:
			result[key] = val
		}
	}
	return result
}

func toMapStringInterface(m map[interface{}]interface{}) map[string]interface{} {
	result := map[string]interface{}{}
	for k, v := range m {
		k, ok := k.(string)
		if !ok {
			panic(fmt.Sprintf("Non string %v, %v: key-entry: %v", k, v, k))
		}
		result[k] = v
	}
	return result
}

// customDecodeHook parses strings of the format "[thing1, thing2, thing3]"
// into string slices. Note that whitespace around slice elements is removed.
func customDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
		return data, nil
	}

	raw := data.(string)
	l := len(raw)
	if l > 1 && raw[0] == '[' && raw[l-1] == ']' {
		slice := strings.Split(raw[1:l-1], ",")
		for i, v := range slice {
			slice[i] = strings.TrimSpace(v)
		}
		return slice, nil
	}

	return data, nil
}

var byteSizeRE = regexp.MustCompile(`^(?P<size>[0-9]+)\s*(?i)(?P<unit>(k|m|g))b?$`)

// byteSizeDecodeHook turns sizes such as "32 MB" into byte counts for integer
// fields.
func byteSizeDecodeHook(f reflect.Kind, t reflect.Kind, data interface{}) (interface{}, error) {
	if f != reflect.String {
		return data, nil
	}
	var limit uint64
	switch t {
	case reflect.Uint32:
		limit = math.MaxUint32
	case reflect.Int:
		limit = math.MaxInt32
	case reflect.Int64, reflect.Uint64:
		limit = math.MaxInt64
	default:
		return data, nil
	}
	raw := data.(string)
	if !byteSizeRE.MatchString(raw) {
		return data, nil
	}
	size, err := strconv.ParseUint(byteSizeRE.ReplaceAllString(raw, "${size}"), 0, 64)
	if err != nil {
		return data, nil
	}
	switch strings.ToLower(byteSizeRE.ReplaceAllString(raw, "${unit}")) {
	case "g":
		size = size << 10
		fallthrough
	case "m":
		size = size << 10
		fallthrough
	case "k":
		size = size << 10
	}
	if size > limit {
		return size, fmt.Errorf("value '%s' overflows %s", raw, t)
	}
	return size, nil
}

// EnhancedExactUnmarshal decodes the config into output. Keys that do not map
// to a field are errors; durations and byte sizes are decoded from strings.
func (c *ConfigParser) EnhancedExactUnmarshal(output interface{}) error {
	oType := reflect.TypeOf(output)
	if oType.Kind() != reflect.Ptr {
		return errors.Errorf("supplied output argument must be a pointer to a struct but is not pointer")
	}
	eType := oType.Elem()
	if eType.Kind() != reflect.Struct {
		return errors.Errorf("supplied output argument must be a pointer to a struct, but it is pointer to something else")
	}

	leafKeys := getKeysRecursively("", c.getFromEnv, c.config, eType)

	logger.Debugf("%+v", leafKeys)
	config := &mapstructure.DecoderConfig{
		ErrorUnused:      true,
		Metadata:         nil,
		Result:           output,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			customDecodeHook,
			byteSizeDecodeHook,
		),
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return err
	}
	return decoder.Decode(leafKeys)
}
