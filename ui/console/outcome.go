// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package console

import "github.com/cockroachdb/errors"

// ErrNoChoices is returned by SelectOne for an empty choice list, which could
// neither be answered nor cancelled.
var ErrNoChoices = errors.New("console: no choices to select from")

// AnswerKind tags the outcome of AskOptional.
type AnswerKind int

const (
	AnswerValue AnswerKind = iota
	AnswerEmpty
	AnswerCancelled
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerValue:
		return "value"
	case AnswerEmpty:
		return "empty"
	case AnswerCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Answer is the three-way result of AskOptional. Value is only meaningful
// for AnswerValue.
type Answer struct {
	Kind  AnswerKind
	Value string
}

// CancelledAnswer and EmptyAnswer are the two out-of-band answers.
var (
	CancelledAnswer = Answer{Kind: AnswerCancelled}
	EmptyAnswer     = Answer{Kind: AnswerEmpty}
)

// ValueAnswer wraps typed text. Empty text becomes EmptyAnswer.
func ValueAnswer(v string) Answer {
	if v == "" {
		return EmptyAnswer
	}
	return Answer{Kind: AnswerValue, Value: v}
}

func (a Answer) Cancelled() bool { return a.Kind == AnswerCancelled }
func (a Answer) Empty() bool     { return a.Kind == AnswerEmpty }

// Choice is the result of a cancellable selection. Index is the 0-based
// position in the choice list, or -1 when the user cancelled.
type Choice struct {
	Index int
	Label string
}

// NoChoice is returned when a selection is cancelled.
var NoChoice = Choice{Index: -1}

// ChoiceAt builds the Choice for index i of choices.
func ChoiceAt(choices []string, i int) Choice {
	return Choice{Index: i, Label: choices[i]}
}

func (c Choice) Cancelled() bool { return c.Index < 0 }
