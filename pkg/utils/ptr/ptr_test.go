package ptr_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeseeker/pkg/utils/ptr"
)

func TestDeref(t *testing.T) {
	gt.Equal(t, ptr.Deref(ptr.Ref("go")), "go")
	gt.Equal(t, ptr.Deref[string](nil), "")
	gt.Equal(t, ptr.Deref[int](nil), 0)
}
