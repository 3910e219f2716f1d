package cindervolume

// InstallLocations exposes the package locations searched to tests.
func InstallLocations() []string {
	return installLocations
}
