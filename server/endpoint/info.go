package endpoint

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/storefront/version"
)

// InfoResponse is the JSON body of the info endpoint.
type InfoResponse struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Info returns a handler that reports build and runtime information.
func Info(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, InfoResponse{
			Service:   serviceName,
			Version:   version.Version,
			Commit:    version.Commit,
			BuildTime: version.BuildTime,
			GoVersion: runtime.Version(),
		})
	}
}
