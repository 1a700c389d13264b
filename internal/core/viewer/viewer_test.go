package viewer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/lightbox/internal/core/gallery"
	"github.com/colonyops/lightbox/internal/core/input"
)

// recorder captures the intents a viewer emits.
type recorder struct {
	closes    int
	navigates []int
}

func (r *recorder) props(images gallery.ImageList, index int) Props {
	return Props{
		Images:     images,
		Index:      index,
		OnClose:    func() { r.closes++ },
		OnNavigate: func(i int) { r.navigates = append(r.navigates, i) },
	}
}

func images(n int) gallery.ImageList {
	out := make(gallery.ImageList, n)
	for i := range out {
		out[i] = fmt.Sprintf("img-%d.png", i)
	}
	return out
}

func newViewer(t *testing.T, r *recorder, imgs gallery.ImageList, index int) *Viewer {
	t.Helper()
	v, err := New(r.props(imgs, index), DefaultKeymap())
	require.NoError(t, err)
	return v
}

func TestNew_RejectsContractViolations(t *testing.T) {
	r := &recorder{}

	_, err := New(r.props(nil, 0), DefaultKeymap())
	require.ErrorIs(t, err, ErrEmptyImages)

	_, err = New(r.props(images(3), 3), DefaultKeymap())
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = New(r.props(images(3), -1), DefaultKeymap())
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestHandleKey_NoWraparoundAtBounds(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			r := &recorder{}

			last := newViewer(t, r, images(n), n-1)
			last.HandleKey("right")

			first := newViewer(t, r, images(n), 0)
			first.HandleKey("left")

			assert.Empty(t, r.navigates)
			assert.Zero(t, r.closes)
		})
	}
}

func TestHandleKey_StepsBetweenBounds(t *testing.T) {
	const n = 6
	for i := 1; i < n-1; i++ {
		r := &recorder{}
		v := newViewer(t, r, images(n), i)

		v.HandleKey("right")
		assert.Equal(t, []int{i + 1}, r.navigates, "right from %d", i)

		r.navigates = nil
		v.HandleKey("left")
		assert.Equal(t, []int{i - 1}, r.navigates, "left from %d", i)
	}
}

func TestHandleKey_EscapeClosesOncePerPress(t *testing.T) {
	for i := 0; i < 4; i++ {
		r := &recorder{}
		v := newViewer(t, r, images(4), i)

		assert.True(t, v.HandleKey("esc"))
		assert.Equal(t, 1, r.closes)

		v.HandleKey("esc")
		assert.Equal(t, 2, r.closes)
		assert.Empty(t, r.navigates)
	}
}

func TestHandleKey_OtherKeysIgnored(t *testing.T) {
	r := &recorder{}
	v := newViewer(t, r, images(3), 1)

	for _, k := range []string{"up", "down", "enter", "a", "space"} {
		assert.False(t, v.HandleKey(k), "key %q", k)
	}
	assert.Zero(t, r.closes)
	assert.Empty(t, r.navigates)
}

func TestHandleKey_CustomKeymap(t *testing.T) {
	r := &recorder{}
	v, err := New(r.props(images(3), 1), Keymap{
		Close: []string{"esc", "q"},
		Next:  []string{"right", "l"},
		Prev:  []string{"left", "h"},
	})
	require.NoError(t, err)

	v.HandleKey("l")
	v.HandleKey("h")
	v.HandleKey("q")

	assert.Equal(t, []int{2, 0}, r.navigates)
	assert.Equal(t, 1, r.closes)
}

func TestClick_ImageNeverCloses(t *testing.T) {
	r := &recorder{}
	v := newViewer(t, r, images(3), 1)

	for i := 0; i < 5; i++ {
		v.Click(TargetImage)
	}
	assert.Zero(t, r.closes)
	assert.Empty(t, r.navigates)
}

func TestClick_BackdropClosesExactlyOnce(t *testing.T) {
	r := &recorder{}
	v := newViewer(t, r, images(3), 1)

	v.Click(TargetBackdrop)
	assert.Equal(t, 1, r.closes)
}

func TestClick_CloseControlDoesNotAlsoCloseViaBackdrop(t *testing.T) {
	r := &recorder{}
	v := newViewer(t, r, images(3), 1)

	v.Click(TargetClose)
	assert.Equal(t, 1, r.closes)
}

func TestClick_NavControlsAreContained(t *testing.T) {
	r := &recorder{}
	v := newViewer(t, r, images(3), 1)

	v.Click(TargetPrev)
	v.Click(TargetNext)

	assert.Equal(t, []int{0, 2}, r.navigates)
	assert.Zero(t, r.closes, "nav controls must not bubble to the backdrop")
}

func TestClick_HiddenControlLandsOnBackdrop(t *testing.T) {
	r := &recorder{}
	v := newViewer(t, r, images(3), 0)

	v.Click(TargetPrev)
	assert.Empty(t, r.navigates)
	assert.Equal(t, 1, r.closes)
}

func TestControlsVisibility(t *testing.T) {
	tests := []struct {
		n, index   int
		prev, next bool
	}{
		{1, 0, false, false},
		{3, 0, false, true},
		{3, 1, true, true},
		{3, 2, true, false},
	}

	for _, tt := range tests {
		r := &recorder{}
		v := newViewer(t, r, images(tt.n), tt.index)
		assert.Equal(t, tt.prev, v.HasPrev(), "prev n=%d i=%d", tt.n, tt.index)
		assert.Equal(t, tt.next, v.HasNext(), "next n=%d i=%d", tt.n, tt.index)
	}
}

func TestIndicator(t *testing.T) {
	r := &recorder{}

	v := newViewer(t, r, images(5), 1)
	text, ok := v.Indicator()
	assert.True(t, ok)
	assert.Equal(t, "2 / 5", text)

	single := newViewer(t, r, gallery.ImageList{"a.png"}, 0)
	_, ok = single.Indicator()
	assert.False(t, ok)
	assert.Equal(t, "a.png", single.Current())
}

func TestMountUnmount_Balanced(t *testing.T) {
	host := input.NewHost()
	r := &recorder{}

	for i := 0; i < 5; i++ {
		v := newViewer(t, r, images(3), 1)

		v.Mount(host)
		v.Mount(host)
		assert.Equal(t, 1, host.Keys.Len(), "one listener per mount")
		assert.Equal(t, 1, host.Scroll.Holders())

		v.Unmount()
		v.Unmount()
		assert.Equal(t, 0, host.Keys.Len())
		assert.False(t, host.Scroll.Locked())
	}
}

func TestMountedListenerReadsLiveProps(t *testing.T) {
	host := input.NewHost()
	r := &recorder{}
	v := newViewer(t, r, images(3), 0)
	v.Mount(host)
	defer v.Unmount()

	require.NoError(t, v.SetProps(r.props(images(3), 2)))
	host.Keys.Dispatch("right")
	assert.Empty(t, r.navigates, "listener must see index 2, not the index at mount")

	host.Keys.Dispatch("left")
	assert.Equal(t, []int{1}, r.navigates)
	assert.Equal(t, 1, host.Keys.Len(), "props changes do not re-register")
}

func TestSetProps_Validates(t *testing.T) {
	r := &recorder{}
	v := newViewer(t, r, images(3), 0)

	err := v.SetProps(r.props(images(3), 7))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 0, v.Props().Index, "props unchanged after rejection")
}

func TestTarget_String(t *testing.T) {
	assert.Equal(t, "backdrop", TargetBackdrop.String())
	assert.Equal(t, "image", TargetImage.String())
	assert.Equal(t, "next", TargetNext.String())
}
