package helper

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"travel_agency/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

var Cloudinary *cloudinary.Cloudinary

func InitCloudinary() error {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return err
	}
	Cloudinary = cld
	return nil
}

// GenerateUploadSignature ký params để client upload trực tiếp lên Cloudinary
func GenerateUploadSignature(params map[string]string) (string, int64) {
	timestamp := time.Now().Unix()
	params["timestamp"] = fmt.Sprintf("%d", timestamp)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	toSign := strings.Join(pairs, "&") + config.Config("CLOUDINARY_API_SECRET")
	h := sha1.Sum([]byte(toSign))

	return hex.EncodeToString(h[:]), timestamp
}
