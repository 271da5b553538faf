/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package numcast implements the numcast command line.
package numcast

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/config"
	"github.com/ARM-software/golang-numerics/logs"
)

const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitOutOfRange = 2
)

type app struct {
	session *viper.Viper
	options *Options
	logger  logr.Logger
	bindErr error
}

// NewRootCommand creates the numcast command and its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{
		session: viper.New(),
		options: &Options{},
		logger:  logr.Discard(),
	}
	cmd := &cobra.Command{
		Use:          "numcast",
		Short:        "Checked conversions between numeric kinds",
		Long:         "numcast converts numbers between Go numeric kinds and fails instead of silently truncating or wrapping.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringP("output", "o", formatText, "output format (text|json)")
	flags.String("log-backend", logs.BackendNone.String(), "logging backend (zap|logrus|hclog|std|stdout|none)")
	flags.BoolP("quiet", "q", false, "only log errors")
	a.bind("OUTPUT", flags.Lookup("output"))
	a.bind("LOG_BACKEND", flags.Lookup("log-backend"))
	a.bind("LOG_QUIET", flags.Lookup("quiet"))

	cmd.AddCommand(newCastCommand(a))
	cmd.AddCommand(newParseCommand(a))
	cmd.AddCommand(newKindsCommand(a))
	cmd.AddCommand(newRulesCommand(a))
	return cmd
}

func (a *app) bind(envVar string, flag *pflag.Flag) {
	if a.bindErr != nil {
		return
	}
	a.bindErr = config.BindFlagToEnv(a.session, EnvVarPrefix, envVar, flag)
}

func (a *app) load(cmd *cobra.Command) error {
	if a.bindErr != nil {
		return commonerrors.WrapError(commonerrors.ErrUnexpected, a.bindErr, "could not bind flags")
	}
	err := config.LoadFromViper(a.session, EnvVarPrefix, a.options, DefaultOptions())
	if err != nil {
		var envVars []string
		for _, vErr := range config.ValidationErrorList(err) {
			if envVar := vErr.EnvVar(EnvVarPrefix); envVar != "" {
				envVars = append(envVars, envVar)
			}
		}
		if len(envVars) > 0 {
			return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "check the flags or %v", strings.Join(envVars, ", "))
		}
		return err
	}
	backend, err := logs.BackendString(a.options.Log.Backend)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
	}
	logger, err := logs.NewLoggerWithWriter(backend, "numcast", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if a.options.Log.Quiet {
		logger = logs.NewQuietLogger(logger)
	}
	a.logger = logger.WithName(cmd.Name())
	a.logger.V(1).Info("configuration loaded", "output", a.options.Output, "backend", backend)
	return nil
}

// ExitCode returns the process exit code matching the error returned by the command.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case commonerrors.Any(err, commonerrors.ErrOutOfRange):
		return ExitOutOfRange
	default:
		return ExitFailure
	}
}
