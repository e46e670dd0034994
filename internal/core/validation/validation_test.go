package validation

import (
	"errors"
	"testing"

	"github.com/rafaelleal24/catalog/internal/core/dto"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

func fieldErrors(t *testing.T, err error) []serviceerrors.FieldError {
	t.Helper()
	var svcErr *serviceerrors.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Kind != serviceerrors.KindValidation {
		t.Fatalf("expected KindValidation, got %v (%s)", svcErr.Kind, svcErr.Message)
	}
	return svcErr.Fields
}

func fieldSet(fields []serviceerrors.FieldError) map[string]string {
	set := make(map[string]string, len(fields))
	for _, f := range fields {
		set[f.Field] = f.Message
	}
	return set
}

func TestDecode_CreateProduct(t *testing.T) {
	v := New()

	t.Run("valid payload with default status", func(t *testing.T) {
		var req dto.CreateProductRequest
		body := `{"name":"Widget","price":9.99,"description":"x","provider":"aabbccddee112233aabbccdd","stock":5}`
		if err := v.Decode([]byte(body), &req); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		product := req.ToDomain()
		if product.Status != "active" {
			t.Fatalf("expected default status 'active', got %q", product.Status)
		}
		if product.Price != 9.99 || product.Stock != 5 {
			t.Fatalf("unexpected product %+v", product)
		}
	})

	t.Run("zero price and stock are accepted", func(t *testing.T) {
		var req dto.CreateProductRequest
		body := `{"name":"Free","price":0,"description":"x","provider":"AABBCCDDEE112233AABBCCDD","stock":0}`
		if err := v.Decode([]byte(body), &req); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("reports every failing field at once", func(t *testing.T) {
		var req dto.CreateProductRequest
		body := `{"name":"","price":-1,"provider":"nope","stock":-3,"status":"archived"}`
		fields := fieldErrors(t, v.Decode([]byte(body), &req))

		set := fieldSet(fields)
		for _, name := range []string{"name", "price", "description", "provider", "stock", "status"} {
			if _, ok := set[name]; !ok {
				t.Errorf("expected failure for field %q, got %+v", name, fields)
			}
		}
		if set["provider"] != "Invalid provider ID format" {
			t.Errorf("unexpected provider message %q", set["provider"])
		}
		if fields[0].Field != "name" {
			t.Errorf("expected failures in declaration order, first was %q", fields[0].Field)
		}
	})

	t.Run("type mismatches are field failures", func(t *testing.T) {
		var req dto.CreateProductRequest
		body := `{"name":"Widget","price":"cheap","description":"x","provider":"aabbccddee112233aabbccdd","stock":1.5}`
		set := fieldSet(fieldErrors(t, v.Decode([]byte(body), &req)))
		if set["price"] != "Expected number" {
			t.Errorf("unexpected price message %q", set["price"])
		}
		if set["stock"] != "Expected integer" {
			t.Errorf("unexpected stock message %q", set["stock"])
		}
		if len(set) != 2 {
			t.Errorf("expected exactly 2 failures, got %+v", set)
		}
	})

	t.Run("empty body reports required fields", func(t *testing.T) {
		var req dto.CreateProductRequest
		fields := fieldErrors(t, v.Decode(nil, &req))
		if len(fields) != 5 {
			t.Fatalf("expected 5 required failures, got %+v", fields)
		}
	})

	t.Run("non-object body is an invalid request", func(t *testing.T) {
		var req dto.CreateProductRequest
		err := v.Decode([]byte(`[1,2,3]`), &req)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestDecode_UpdateProduct(t *testing.T) {
	v := New()

	t.Run("absent fields stay nil", func(t *testing.T) {
		var req dto.UpdateProductRequest
		if err := v.Decode([]byte(`{"stock":7}`), &req); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		patch := req.ToPatch()
		if patch.Stock == nil || *patch.Stock != 7 {
			t.Fatalf("expected stock 7, got %+v", patch.Stock)
		}
		if patch.Name != nil || patch.Price != nil || patch.Status != nil {
			t.Fatalf("expected untouched fields to be nil, got %+v", patch)
		}
	})

	t.Run("empty object yields empty patch", func(t *testing.T) {
		var req dto.UpdateProductRequest
		if err := v.Decode([]byte(`{}`), &req); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !req.ToPatch().IsEmpty() {
			t.Fatal("expected empty patch")
		}
	})

	t.Run("unknown fields are dropped", func(t *testing.T) {
		var req dto.UpdateProductRequest
		if err := v.Decode([]byte(`{"color":"red"}`), &req); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !req.ToPatch().IsEmpty() {
			t.Fatal("expected empty patch")
		}
	})

	t.Run("present fields use create rules", func(t *testing.T) {
		var req dto.UpdateProductRequest
		set := fieldSet(fieldErrors(t, v.Decode([]byte(`{"name":"","price":-0.5}`), &req)))
		if _, ok := set["name"]; !ok {
			t.Errorf("expected name failure, got %+v", set)
		}
		if _, ok := set["price"]; !ok {
			t.Errorf("expected price failure, got %+v", set)
		}
	})
}

func TestDecode_Provider(t *testing.T) {
	v := New()

	t.Run("email is optional", func(t *testing.T) {
		var req dto.CreateProviderRequest
		body := `{"name":"Acme","address":"1 Road","phone":"555","description":"tools"}`
		if err := v.Decode([]byte(body), &req); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if req.ToDomain().Email != "" {
			t.Fatal("expected empty email")
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		var req dto.CreateProviderRequest
		body := `{"name":"Acme","address":"1 Road","phone":"555","description":"tools","email":"not-an-email"}`
		set := fieldSet(fieldErrors(t, v.Decode([]byte(body), &req)))
		if set["email"] != "Invalid email" {
			t.Fatalf("unexpected email failure %+v", set)
		}
	})

	t.Run("create requires description", func(t *testing.T) {
		var req dto.CreateProviderRequest
		body := `{"name":"Acme","address":"1 Road","phone":"555"}`
		set := fieldSet(fieldErrors(t, v.Decode([]byte(body), &req)))
		if _, ok := set["description"]; !ok {
			t.Fatalf("expected description failure, got %+v", set)
		}
	})

	t.Run("partial update allows missing description", func(t *testing.T) {
		var req dto.UpdateProviderRequest
		if err := v.Decode([]byte(`{"phone":"777"}`), &req); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestDecode_RejectsNonPointer(t *testing.T) {
	v := New()
	if err := v.Decode([]byte(`{}`), dto.CreateProductRequest{}); err == nil {
		t.Fatal("expected error for non-pointer destination")
	}
}
