package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("gram.atomic", 10, 8, 1)

	// 基本的なエラーメッセージの確認
	want := "molkern: gram.atomic: dimension mismatch on axis 1 (features). Expected 10, got 8"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}

	// DimensionError型にキャスト可能か確認
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 10 || dimErr.Got != 8 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
}

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		reason  string
		value   interface{}
		wantMsg string
	}{
		{
			name:    "unknown kernel name",
			param:   "kernel",
			reason:  "unknown kernel name",
			value:   "rbf",
			wantMsg: "molkern: validation failed for parameter 'kernel': unknown kernel name (got: rbf)",
		},
		{
			name:    "non-positive sigma",
			param:   "sigma",
			reason:  "must be a positive finite number",
			value:   -1.0,
			wantMsg: "molkern: validation failed for parameter 'sigma': must be a positive finite number (got: -1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.param, tt.reason, tt.value)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var valErr *ValidationError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValidationError")
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("kpca", "eigendecomposition failed to converge")

	want := "molkern: kpca: eigendecomposition failed to converge"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewInputShapeError(t *testing.T) {
	err := NewInputShapeError("gram.local", []int{5}, []int{7})

	want := "molkern: gram.local: input shape mismatch. Expected shape [5], got [7]"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var shapeErr *InputShapeError
	if !As(err, &shapeErr) {
		t.Error("Error should be castable to *InputShapeError")
	}
}

func TestErrEmptyData(t *testing.T) {
	err := Wrap(ErrEmptyData, "gaussian_kernel")

	// ラップしてもIsで判別できることを確認
	if !Is(err, ErrEmptyData) {
		t.Error("wrapped error should match ErrEmptyData")
	}
	if !strings.Contains(err.Error(), "gaussian_kernel") {
		t.Errorf("wrapped message missing context: %v", err)
	}
}

func TestWarningHandler(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) { captured = append(captured, w) })
	defer SetWarningHandler(nil)

	w := NewZeroVarianceWarning("kpca", 2, 1e-12)
	Warn(w)

	if len(captured) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(captured))
	}

	var zv *ZeroVarianceWarning
	if !As(captured[0], &zv) {
		t.Fatal("warning should be castable to *ZeroVarianceWarning")
	}
	if zv.Components != 2 {
		t.Errorf("Components = %d, want 2", zv.Components)
	}
	if !strings.Contains(zv.Error(), "zero-filled") {
		t.Errorf("unexpected message: %v", zv.Error())
	}
}

func TestNumericalChecks(t *testing.T) {
	t.Run("CheckNumericalStability", func(t *testing.T) {
		if err := CheckNumericalStability("test", []float64{1, 2, 3}, 0); err != nil {
			t.Errorf("finite values should pass: %v", err)
		}
		nan := []float64{1, 0}
		nan[1] = nan[1] / nan[1] // NaN
		if err := CheckNumericalStability("test", nan, 0); err == nil {
			t.Error("NaN should fail")
		}

		var numErr *NumericalInstabilityError
		err := CheckNumericalStability("test", nan, 3)
		if !As(err, &numErr) {
			t.Error("Error should be castable to *NumericalInstabilityError")
		}
	})

	t.Run("SafeDivide", func(t *testing.T) {
		if got := SafeDivide(1, 0); got != 0 {
			t.Errorf("SafeDivide(1, 0) = %v, want 0", got)
		}
		if got := SafeDivide(6, 3); got != 2 {
			t.Errorf("SafeDivide(6, 3) = %v, want 2", got)
		}
	})

	t.Run("StabilizeExp", func(t *testing.T) {
		if got := StabilizeExp(-1000); got != 0 {
			t.Errorf("StabilizeExp(-1000) = %v, want 0", got)
		}
		if got := StabilizeExp(1000); got <= 0 {
			t.Errorf("StabilizeExp(1000) = %v, want finite positive", got)
		}
	})
}
