package jsonsafe

import "testing"

func TestResultEnvelope(t *testing.T) {
	t.Run("ok carries the value", func(t *testing.T) {
		r := Ok(int64(42))
		if !r.Good || r.Failure != "" || r.Value != 42 {
			t.Errorf("Ok(42) = %+v", r)
		}
	})

	t.Run("fail carries the diagnostic", func(t *testing.T) {
		r := Fail[string]("something broke")
		if r.Good || r.Failure != "something broke" || r.Value != "" {
			t.Errorf("Fail = %+v", r)
		}
	})

	t.Run("unpack bridges to error returns", func(t *testing.T) {
		v, err := Ok("x").Unpack()
		if err != nil || v != "x" {
			t.Errorf("Unpack() = %q, %v", v, err)
		}
		_, err = Fail[string]("boom").Unpack()
		if err == nil || err.Error() != "boom" {
			t.Errorf("Unpack() error = %v; want boom", err)
		}
	})
}

func TestVoidResultEnvelope(t *testing.T) {
	if err := OkVoid().Err(); err != nil {
		t.Errorf("OkVoid().Err() = %v; want nil", err)
	}
	if err := FailVoid("boom").Err(); err == nil || err.Error() != "boom" {
		t.Errorf("FailVoid().Err() = %v; want boom", err)
	}
}
