package cli

import (
	xgxmeta "github.com/xgx-io/xgx-meta"
)

// Error classes raised by the CLI. They follow the builtin classes in
// registration order.
var (
	ClassConfig = xgxmeta.Register("CLI_CONFIG")
	ClassUsage  = xgxmeta.Register("CLI_USAGE")
	ClassInput  = xgxmeta.Register("CLI_INPUT")
)

func configError(err error) error { return xgxmeta.WrapAs(ClassConfig, err) }

func usageError(err error) error { return xgxmeta.WrapAs(ClassUsage, err) }

func inputError(err error) error { return xgxmeta.WrapAs(ClassInput, err) }

// isUserError reports whether err was caused by the invocation rather than
// the environment.
func isUserError(err error) bool {
	return xgxmeta.HasCode(err, ClassConfig.Code) ||
		xgxmeta.HasCode(err, ClassUsage.Code) ||
		xgxmeta.HasCode(err, ClassInput.Code)
}
