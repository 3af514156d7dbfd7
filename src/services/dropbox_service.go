package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/oauth2"
)

var ErrDropboxNotConfigured = errors.New("Dropbox not configured")

var dropboxEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.dropbox.com/oauth2/authorize",
	TokenURL: "https://api.dropboxapi.com/oauth2/token",
}

func dropboxOAuthConfig(appKey, appSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     appKey,
		ClientSecret: appSecret,
		Endpoint:     dropboxEndpoint,
	}
}

// GetDropboxAuthURL builds the authorize URL for a no-redirect code flow.
// token_access_type=offline asks Dropbox for a refresh token too.
func GetDropboxAuthURL(appKey, appSecret, userID string) (string, error) {
	if appKey == "" || appSecret == "" {
		return "", ErrDropboxNotConfigured
	}

	conf := dropboxOAuthConfig(appKey, appSecret)
	authorizeURL := conf.AuthCodeURL("",
		oauth2.SetAuthURLParam("token_access_type", "offline"),
		oauth2.SetAuthURLParam("response_type", "code"),
	)

	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		_, _ = DB.UserCollection.UpdateOne(context.TODO(),
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"dropbox_auth_flow_state": "pending"}})
	}
	return authorizeURL, nil
}

// CompleteDropboxAuth exchanges the pasted authorization code and stores the
// tokens on the user account.
func CompleteDropboxAuth(appKey, appSecret, userID, authCode string) error {
	if appKey == "" || appSecret == "" {
		return ErrDropboxNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	conf := dropboxOAuthConfig(appKey, appSecret)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("Dropbox auth failed: %v", err)
	}

	_, err = DB.UserCollection.UpdateOne(context.TODO(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"dropbox_access_token":  token.AccessToken,
			"dropbox_refresh_token": token.RefreshToken,
			"dropbox_connected":     true,
			"dropbox_connected_at":  time.Now().UTC(),
		}})
	return err
}

// GetDropboxStatus reports whether a user has connected Dropbox.
func GetDropboxStatus(userID string) (connected bool, connectedAt *time.Time) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}
	var user struct {
		DropboxConnected   bool       `bson:"dropbox_connected"`
		DropboxConnectedAt *time.Time `bson:"dropbox_connected_at"`
	}
	if err := DB.UserCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&user); err != nil {
		return false, nil
	}
	return user.DropboxConnected, user.DropboxConnectedAt
}

// LinkDropboxFolder binds a Dropbox folder to a project for document sync.
func LinkDropboxFolder(projectID, folderPath, userID string) error {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}
	var user struct {
		DropboxConnected bool `bson:"dropbox_connected"`
	}
	if err := DB.UserCollection.FindOne(context.TODO(), bson.M{"_id": userOID}).Decode(&user); err != nil || !user.DropboxConnected {
		return errors.New("Please connect your Dropbox account first")
	}

	projectOID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return errors.New("invalid project ID")
	}
	_, err = DB.ProjectCollection.UpdateOne(context.TODO(),
		bson.M{"_id": projectOID},
		bson.M{"$set": bson.M{
			"dropbox_folder":    folderPath,
			"dropbox_linked_by": userID,
			"dropbox_linked_at": time.Now().UTC(),
		}})
	return err
}

// DropboxFile one entry from a linked folder listing.
type DropboxFile struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"` // "file" or "folder"
	Size     *int64 `json:"size"`
	Modified string `json:"modified,omitempty"`
}

var dropboxHTTP = &http.Client{Timeout: 20 * time.Second}

// ListDropboxFiles lists the project's linked folder using the caller's
// stored access token.
func ListDropboxFiles(projectID, userID string) ([]DropboxFile, string, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, "", errors.New("invalid user ID")
	}
	var user struct {
		DropboxAccessToken string `bson:"dropbox_access_token"`
	}
	if err := DB.UserCollection.FindOne(context.TODO(), bson.M{"_id": userOID}).Decode(&user); err != nil || user.DropboxAccessToken == "" {
		return nil, "", errors.New("Dropbox not connected")
	}

	project, err := GetProjectByID(projectID)
	if err != nil {
		return nil, "", errors.New("project not found")
	}
	if project.DropboxFolder == nil || *project.DropboxFolder == "" {
		return []DropboxFile{}, "", nil
	}
	folder := *project.DropboxFolder

	payload, _ := json.Marshal(map[string]any{"path": folder})
	req, err := http.NewRequest(http.MethodPost,
		"https://api.dropboxapi.com/2/files/list_folder", bytes.NewReader(payload))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+user.DropboxAccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := dropboxHTTP.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("Dropbox error: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		Entries []struct {
			Tag            string `json:".tag"`
			Name           string `json:"name"`
			PathDisplay    string `json:"path_display"`
			Size           *int64 `json:"size"`
			ServerModified string `json:"server_modified"`
		} `json:"entries"`
		ErrorSummary string `json:"error_summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("Dropbox error: %s", result.ErrorSummary)
	}

	files := make([]DropboxFile, 0, len(result.Entries))
	for _, e := range result.Entries {
		entryType := "file"
		if e.Tag == "folder" {
			entryType = "folder"
		}
		files = append(files, DropboxFile{
			Name:     e.Name,
			Path:     e.PathDisplay,
			Type:     entryType,
			Size:     e.Size,
			Modified: e.ServerModified,
		})
	}
	return files, folder, nil
}

// SharedDocument one entry of the admin's shared folder as seen by field
// users. Viewable marks formats the mobile client can open in place.
type SharedDocument struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"`
	Size     *int64 `json:"size,omitempty"`
	Modified string `json:"modified,omitempty"`
	Viewable bool   `json:"viewable,omitempty"`
}

var viewableDocExts = map[string]bool{
	"pdf": true, "png": true, "jpg": true, "jpeg": true, "gif": true,
}

// isViewableDoc reports whether the mobile client can render the file in
// place rather than only offering a download.
func isViewableDoc(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	return viewableDocExts[ext]
}

// adminDropboxToken finds any admin account with a connected Dropbox. Field
// users browse shared documents through the admin's token.
func adminDropboxToken() (string, error) {
	var admin struct {
		DropboxAccessToken string `bson:"dropbox_access_token"`
	}
	err := DB.UserCollection.FindOne(context.TODO(), bson.M{
		"role":                 models.RoleAdmin,
		"dropbox_access_token": bson.M{"$exists": true, "$ne": ""},
	}).Decode(&admin)
	if err != nil {
		return "", errors.New("Admin has not connected Dropbox")
	}
	return admin.DropboxAccessToken, nil
}

// ListSharedDocuments lists the project's linked folder with the admin's
// token so workers and subcontractors can read site documents. An empty
// message means the listing succeeded.
func ListSharedDocuments(projectID string) (files []SharedDocument, folder, message string, err error) {
	token, err := adminDropboxToken()
	if err != nil {
		return []SharedDocument{}, "", err.Error(), nil
	}

	project, err := GetProjectByID(projectID)
	if err != nil {
		return nil, "", "", errors.New("Project not found")
	}
	if project.DropboxFolder == nil || *project.DropboxFolder == "" {
		return []SharedDocument{}, "", "No Dropbox folder linked to this project", nil
	}
	folder = *project.DropboxFolder

	payload, _ := json.Marshal(map[string]any{"path": folder})
	req, err := http.NewRequest(http.MethodPost,
		"https://api.dropboxapi.com/2/files/list_folder", bytes.NewReader(payload))
	if err != nil {
		return nil, "", "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := dropboxHTTP.Do(req)
	if err != nil {
		return nil, "", "", fmt.Errorf("Dropbox error: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		Entries []struct {
			Tag            string `json:".tag"`
			Name           string `json:"name"`
			PathDisplay    string `json:"path_display"`
			Size           *int64 `json:"size"`
			ServerModified string `json:"server_modified"`
		} `json:"entries"`
		ErrorSummary string `json:"error_summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", "", fmt.Errorf("Dropbox error: %s", result.ErrorSummary)
	}

	files = make([]SharedDocument, 0, len(result.Entries))
	for _, e := range result.Entries {
		doc := SharedDocument{
			Name:     e.Name,
			Path:     e.PathDisplay,
			Type:     "file",
			Size:     e.Size,
			Modified: e.ServerModified,
		}
		if e.Tag == "folder" {
			doc.Type = "folder"
		} else {
			doc.Viewable = isViewableDoc(e.Name)
		}
		files = append(files, doc)
	}
	return files, folder, "", nil
}

// GetSharedDocumentLink resolves a temporary download URL for one file in
// the admin's Dropbox. Links expire after four hours on Dropbox's side.
func GetSharedDocumentLink(filePath string) (downloadURL, filename string, err error) {
	token, err := adminDropboxToken()
	if err != nil {
		return "", "", ErrDropboxNotConfigured
	}

	payload, _ := json.Marshal(map[string]any{"path": filePath})
	req, err := http.NewRequest(http.MethodPost,
		"https://api.dropboxapi.com/2/files/get_temporary_link", bytes.NewReader(payload))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := dropboxHTTP.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("Could not get file: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		Link         string `json:"link"`
		ErrorSummary string `json:"error_summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("Could not get file: %s", result.ErrorSummary)
	}

	parts := strings.Split(filePath, "/")
	return result.Link, parts[len(parts)-1], nil
}
