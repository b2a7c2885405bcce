package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mapsearch/api-go/config"
	"github.com/mapsearch/api-go/models"
	"github.com/mapsearch/api-go/utils"
	"gorm.io/gorm"
)

// UploadController handles two storage backends: user avatars go to R2
// through presigned PUTs, content post images are written to the local
// media directory next to the process.
type UploadController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
}

type AvatarUploadRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	FileSize    int64  `json:"file_size" binding:"required"`
}

type AvatarConfirmRequest struct {
	TempKey string `json:"temp_key" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in"`
}

func NewUploadController(db *gorm.DB) *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// --- Avatars (R2) ---

func (uc *UploadController) GetAvatarTempURL(c *gin.Context) {
	var req AvatarUploadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !uc.isValidAvatarFile(req.ContentType, req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar file type or size", "success": false})
		return
	}

	key := uc.generateTempAvatarKey(req.FileName)

	presignedURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 1800,
		},
		Message: "Temporary avatar upload URL generated successfully",
	})
}

func (uc *UploadController) ConfirmAvatarUpload(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var req AvatarConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	exists, err := uc.verifyFileExists(req.TempKey)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Temporary avatar file not found", "success": false})
		return
	}

	permanentKey := uc.generateAvatarKey(user.UserID, req.TempKey)
	if err := uc.moveFile(req.TempKey, permanentKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm avatar upload", "success": false})
		return
	}

	avatarURL := fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, permanentKey)
	uc.DB.Model(&models.User{}).Where("id = ?", user.UserID).Update("avatar", avatarURL)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"key": permanentKey, "file_url": avatarURL},
		Message: "Avatar upload confirmed successfully",
	})
}

func (uc *UploadController) CleanupTempAvatar(c *gin.Context) {
	tempKey := c.Param("tempKey")

	if tempKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Temp key is required", "success": false})
		return
	}
	if !strings.HasPrefix(tempKey, "temp/avatars/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid temp key format", "success": false})
		return
	}

	if err := uc.deleteFile(tempKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cleanup temporary file", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Temporary avatar cleaned up successfully"})
}

// --- Post images (local media dir) ---

// UploadPostImage stores a multipart image under the media dir. The caller
// passes the post slug as "name"; before a slug exists a uuid name is used
// and the record updated later.
func (uc *UploadController) UploadPostImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required", "success": false})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image file type", "success": false})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		name = uuid.New().String()
	}
	fileName := name + ext

	mediaDir := config.MediaDir()
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image", "success": false})
		return
	}

	dst, err := os.Create(filepath.Join(mediaDir, fileName))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image", "success": false})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    gin.H{"image": fileName},
		Message: "Image uploaded successfully",
	})
}

// --- R2 helpers ---

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (uc *UploadController) verifyFileExists(key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	if _, err := uc.R2Client.HeadObject(context.TODO(), input); err != nil {
		return false, nil
	}
	return true, nil
}

func (uc *UploadController) deleteFile(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := uc.R2Client.DeleteObject(context.TODO(), input)
	return err
}

func (uc *UploadController) moveFile(sourceKey, destKey string) error {
	copyInput := &s3.CopyObjectInput{
		Bucket:     aws.String(uc.R2Config.BucketName),
		CopySource: aws.String(fmt.Sprintf("%s/%s", uc.R2Config.BucketName, sourceKey)),
		Key:        aws.String(destKey),
	}

	if _, err := uc.R2Client.CopyObject(context.TODO(), copyInput); err != nil {
		return err
	}

	return uc.deleteFile(sourceKey)
}

func (uc *UploadController) isValidAvatarFile(contentType string, fileSize int64) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp",
	}

	validType := false
	for _, t := range validTypes {
		if contentType == t {
			validType = true
			break
		}
	}
	if !validType {
		return false
	}

	return fileSize <= 5*1024*1024
}

func (uc *UploadController) generateTempAvatarKey(fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("temp/avatars/%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
}

func (uc *UploadController) generateAvatarKey(userID uint, tempKey string) string {
	ext := filepath.Ext(tempKey)
	return fmt.Sprintf("avatars/%d/%d_avatar%s", userID, time.Now().Unix(), ext)
}
