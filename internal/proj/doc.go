/*
Package proj provides a minimal interface to the Cartographic Projections
Library PROJ.

See: https://proj.org/

Only what the coordinate transformer needs is exposed: CRS objects created
from a definition such as "EPSG:4326", CRS-to-CRS operations normalized to
longitude/latitude axis order, batch transformation over parallel slices and
a few metadata accessors. All geodetic computation happens inside PROJ.

This package requires PROJ version 8 and above.
*/
package proj
