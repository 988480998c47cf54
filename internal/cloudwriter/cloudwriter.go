// Package cloudwriter uploads finished export objects to cloud storage.
// Writers buffer locally and flush the whole object on Close, which is how
// plan exports are produced (write-once, no appends).
package cloudwriter

// CloudWriter receives the bytes of one export object.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory creates writers bound to a bucket and object path.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
