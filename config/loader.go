/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads option structures from flags, environment variables, `.env` files and defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/value"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "numericsflagbinding" // lower case only
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) into configurationToSet.
// Entries missing from the environment come from defaultConfiguration.
// envVarPrefix is the prefix environment variables use: with "numcast", the variable for key `to` is `NUMCAST_TO`.
func Load(envVarPrefix string, configurationToSet, defaultConfiguration Validator) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as Load but reuses the viper session provided.
// Viper's precedence order is kept: explicit `Set`, flags, environment, defaults.
// Non-empty values of defaultConfiguration take precedence over flag default values.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet, defaultConfiguration Validator) (err error) {
	if viperSession == nil || configurationToSet == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration")
		return
	}
	var defaults map[string]any
	if defaultConfiguration != nil {
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not read default configuration")
			return
		}
	}
	err = viperSession.MergeConfigMap(defaults)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not apply default configuration")
		return
	}

	// The .env file is optional.
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)
	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode configuration")
		return
	}
	err = NewValidationErrors(configurationToSet.Validate())
	return
}

// BindFlagToEnv binds a pflag to an environment variable.
// envVar is the name of the environment variable with or without envVarPrefix.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if flag == nil {
		err = commonerrors.Newf(commonerrors.ErrUndefined, "missing flag for %v", envVar)
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	return
}

// EnvVarName returns the environment variable a configuration key is read from.
func EnvVarName(envVarPrefix, key string) string {
	_, envVar := generateEnvVarConfigKeys(key, envVarPrefix)
	return envVar
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	short := strings.ToLower(envVar)
	if prefix := strings.ToLower(envVarPrefix); prefix != "" && strings.HasPrefix(short, prefix) {
		short = strings.TrimPrefix(strings.TrimPrefix(short, prefix), EnvVarSeparator)
	}
	shortKey = fmt.Sprintf("%v%v%v", flagKeyPrefix, configKeySeparator, strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator))
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, short), configKeySeparator, EnvVarSeparator))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys copies flag values onto the structure keys they are bound to.
// Viper aliases do not handle multi-level keys, so the binding is done by hand.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
		} else {
			flagDefault := viperSession.Get(flagKey)
			if !value.IsEmpty(flagDefault) {
				viperSession.SetDefault(key, flagDefault)
				if value.IsEmpty(viperSession.Get(key)) {
					viperSession.Set(key, flagDefault)
				}
			}
		}
		viperSession.RegisterAlias(flagKey, key)
	}
}
