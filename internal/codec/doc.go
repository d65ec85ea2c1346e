package codec

// Package codec holds the raster half of the conversion pipeline: decoding a
// source into an image, allocating a drawing surface sized to it, copying the
// image onto the surface and encoding the surface into a target format.
// Decoding goes through imaging (with EXIF auto-orientation) and the formats
// registered with the image package; WEBP output uses libwebp via chai2010/webp.
