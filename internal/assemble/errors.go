package assemble

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ioErrorCode        = "IO_ERROR"
	malformedTopicCode = "MALFORMED_TOPIC"
	externalToolCode   = "EXTERNAL_TOOL_ERROR"
	brokenContentCode  = "BROKEN_CONTENT"
)

func wrapIOError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).
		WithTextCode(ioErrorCode)
}

// wrapClassifyError covers entries that are neither readable topics nor
// absent; these are surfaced as IO failures with their own code.
func wrapClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "classifying topics").
		WithTextCode(malformedTopicCode)
}

func wrapRenderError(exitCode int) error {
	return goerrors.Wrap(
		fmt.Errorf("renderer exited with status %d", exitCode),
		goerrors.CategoryCommand, "external renderer failed").
		WithTextCode(externalToolCode)
}

func wrapCheckError(count int) error {
	return goerrors.Wrap(
		fmt.Errorf("%d problem(s) found", count),
		goerrors.CategoryCommand, "content check failed").
		WithTextCode(brokenContentCode)
}
