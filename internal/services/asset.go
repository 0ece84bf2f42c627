// Package services holds the resource managers coordinating the
// relational store and the asset store.
package services

import "io"

// UploadedAsset is a validated multipart upload handed down from the
// handlers. Size and type limits are enforced before it gets here.
type UploadedAsset struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Close releases the underlying multipart file, if there is one.
func (a *UploadedAsset) Close() error {
	if closer, ok := a.Content.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
