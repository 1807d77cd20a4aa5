package repository

import "testing"

func TestBuildLikeConditionByDialectSQLite(t *testing.T) {
	condition, args := buildLikeConditionByDialect("sqlite", "milk", "name")
	if condition != `name LIKE ? ESCAPE '\'` {
		t.Fatalf("unexpected sqlite condition: %s", condition)
	}
	if len(args) != 1 || args[0] != "%milk%" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildLikeConditionByDialectPostgres(t *testing.T) {
	condition, args := buildLikeConditionByDialect("postgres", "Milk", "name", "", "email")
	want := `name ILIKE ? ESCAPE '\' OR email ILIKE ? ESCAPE '\'`
	if condition != want {
		t.Fatalf("postgres condition mismatch, want %s got %s", want, condition)
	}
	if len(args) != 2 {
		t.Fatalf("args len want 2 got %d", len(args))
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("unexpected escaped value: %s", got)
	}
}
