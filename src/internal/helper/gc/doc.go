// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers to reduce garbage collection
// overhead when reading certificate files and rendering certificate records.
// It wraps the [bytebufferpool] library behind a small interface.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
