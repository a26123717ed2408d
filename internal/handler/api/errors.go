package api

import "shareit/internal/pkg/errs"

var errMissingCaller = errs.Validation("caller id missing from context")
