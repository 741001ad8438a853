// Package geotrans wraps a PROJ CRS-to-CRS operation behind a single batch
// transform over parallel longitude/latitude slices. It also renders the
// labels that identify the source and target CRS in output headers, using a
// strategy chosen by configuration.
package geotrans
