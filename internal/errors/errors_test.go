package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	base := InsufficientCredit("잔여 엽전이 부족합니다")
	wrapped := Wrap(base, "generate fortune")

	if GetCode(wrapped) != CodeInsufficientCredit {
		t.Errorf("code = %s, expected %s", GetCode(wrapped), CodeInsufficientCredit)
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("wrapped error must unwrap to the original")
	}
}

func TestWrapForeignError(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := Wrap(cause, "call llm")

	if GetCode(wrapped) != CodeInternalError {
		t.Errorf("code = %s, expected %s", GetCode(wrapped), CodeInternalError)
	}
	if wrapped.Error() != "call llm: connection refused" {
		t.Errorf("message = %q", wrapped.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "nothing") != nil {
		t.Error("wrapping nil must stay nil")
	}
	if Wrapf(nil, "nothing %d", 1) != nil {
		t.Error("wrapping nil must stay nil")
	}
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeExternalService, stderrors.New("timeout"))
	if GetCode(err) != CodeExternalService {
		t.Errorf("code = %s", GetCode(err))
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if GetCode(stderrors.New("plain")) != "UNKNOWN" {
		t.Error("plain errors must report UNKNOWN")
	}
}

func TestExternalServiceError(t *testing.T) {
	cause := stderrors.New("429 too many requests")
	err := ExternalServiceError("openai", cause)

	if GetCode(err) != CodeExternalService {
		t.Errorf("code = %s", GetCode(err))
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause must be reachable through Unwrap")
	}
}
