package editor

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"drone-site-server/internal/domain"
	"drone-site-server/internal/storage"
)

// ErrUploadInFlight is returned when a trigger arrives while a previous
// upload has not settled. The document is untouched and no network call
// is made.
var ErrUploadInFlight = errors.New("an upload is already in progress")

// UploadState is the orchestrator's state: Idle or Uploading.
type UploadState int

const (
	StateIdle UploadState = iota
	StateUploading
)

// File is a user-selected binary asset to embed.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Uploader drives a user's "insert image" intent through the blob store
// and lands the resulting embed back into the session at the position the
// user was at when they triggered the upload — not wherever the cursor
// drifted to while the bytes were in flight. The selection snapshot is
// captured before any network activity; the store call is the only
// suspension point, and the document stays editable throughout.
type Uploader struct {
	session *Session
	store   domain.BlobStore
	logger  domain.Logger
	folder  string

	onFailure func(error)
	onBusy    func(bool)

	mu    sync.Mutex
	state UploadState
}

// NewUploader creates an upload orchestrator bound to one session. folder
// is the logical key prefix for uploaded assets.
func NewUploader(session *Session, store domain.BlobStore, folder string, logger domain.Logger) *Uploader {
	return &Uploader{
		session: session,
		store:   store,
		folder:  folder,
		logger:  logger,
	}
}

// OnFailure registers the user-visible failure notice callback.
func (u *Uploader) OnFailure(fn func(error)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onFailure = fn
}

// OnBusyChange registers the busy-indicator callback.
func (u *Uploader) OnBusyChange(fn func(bool)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onBusy = fn
}

// State returns the current orchestrator state.
func (u *Uploader) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// Trigger starts an upload for the given file. At most one upload may be
// in flight per session; a second trigger returns ErrUploadInFlight
// without touching the document or the network. The target position is
// captured here, before the upload begins.
func (u *Uploader) Trigger(ctx context.Context, file File) error {
	u.mu.Lock()
	if u.state != StateIdle {
		u.mu.Unlock()
		return ErrUploadInFlight
	}
	u.state = StateUploading
	u.mu.Unlock()

	target := u.session.CaptureSelection()
	key := storage.ObjectKey(u.folder, file.Name)

	u.setBusy(true)
	go u.run(ctx, file, key, target)
	return nil
}

func (u *Uploader) run(ctx context.Context, file File, key string, target Snapshot) {
	defer func() {
		u.mu.Lock()
		u.state = StateIdle
		u.mu.Unlock()
		u.setBusy(false)
	}()

	if err := u.store.Put(ctx, key, file.Content, file.ContentType); err != nil {
		if u.logger != nil {
			u.logger.Error("asset upload failed", err, "key", key)
		}
		u.fail(err)
		return
	}

	url := u.store.ResolveURL(key)
	applied := u.session.ApplyAt(target, InsertEmbed(url, kindForContentType(file.ContentType)))
	if !applied {
		// Session torn down while the upload was in flight; the late
		// completion is absorbed silently.
		return
	}
	if u.logger != nil {
		u.logger.Info("asset embedded", "key", key, "offset", target.Offset)
	}
}

func (u *Uploader) setBusy(busy bool) {
	u.mu.Lock()
	fn := u.onBusy
	u.mu.Unlock()
	if fn != nil {
		fn(busy)
	}
}

func (u *Uploader) fail(err error) {
	u.mu.Lock()
	fn := u.onFailure
	u.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

func kindForContentType(contentType string) EmbedKind {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return EmbedImage
	case strings.HasPrefix(contentType, "video/"):
		return EmbedVideo
	default:
		return EmbedFile
	}
}
