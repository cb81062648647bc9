// Command sfa packs raster images into Single File Asset containers
// and unpacks them again.
package main

func main() {
	Execute()
}
