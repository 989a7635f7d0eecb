package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionPlay    = "play"
	actionAnswer  = "answer"
	actionNext    = "next"
	actionRestart = "restart"
)

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// intParam parses the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, error) {
	if i >= len(cd.Params) {
		return 0, errBadCallback
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, errBadCallback
	}
	return n, nil
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// stringParam returns the i-th parameter, which must not be empty.
func (cd callbackData) stringParam(i int) (string, error) {
	if i >= len(cd.Params) || cd.Params[i] == "" {
		return "", errBadCallback
	}
	return cd.Params[i], nil
}

// buildAnswerCallback builds callback data for tapping a flag: answer:<game>:<question>:<index>.
func buildAnswerCallback(gameRef string, questionNum, answerIndex int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{
			gameRef,
			strconv.Itoa(questionNum),
			strconv.Itoa(answerIndex),
		},
	}.encode()
}

// buildNextCallback builds callback data for the Continue button: next:<game>:<question>.
func buildNextCallback(gameRef string, questionNum int) string {
	return callbackData{
		Action: actionNext,
		Params: []string{gameRef, strconv.Itoa(questionNum)},
	}.encode()
}

func buildRestartCallback() string {
	return actionRestart
}

func buildPlayCallback() string {
	return actionPlay
}
