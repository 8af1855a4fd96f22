package meta

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"

	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

// ImageUpload é a imagem enviada para a biblioteca da conta; Name substitui o nome do arquivo
type ImageUpload struct {
	FilePath string `validate:"required"`
	Name     string
}

func (s *MetaIntegrator) ListImages(ctx context.Context, opts domain.ListOptions) (*domain.ListResult[domain.AdImage], error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fields", fieldsOrDefault(opts.Fields, domain.ImageListFields).String())

	return list[domain.AdImage](ctx, s.Client, account+"/adimages", params, opts)
}

// UploadImage envia a imagem no campo multipart "filename" e devolve o hash gerado
func (s *MetaIntegrator) UploadImage(ctx context.Context, params ImageUpload) (*domain.AdImage, error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	file, err := openUpload(params.FilePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := params.Name
	if name == "" {
		name = filepath.Base(params.FilePath)
	}

	var resp metadomain.ImageUploadResponse
	err = s.Client.PostMultipart(ctx, account+"/adimages", nil, &metaclient.FileUpload{
		FieldName: "filename",
		FileName:  name,
		Reader:    file,
	}, &resp)
	if err != nil {
		return nil, err
	}

	for key, image := range resp.Images {
		uploaded := &domain.AdImage{Hash: image.Hash, URL: image.URL, Name: image.Name, Width: image.Width, Height: image.Height}
		if uploaded.Name == "" {
			uploaded.Name = key
		}
		log.ForContext(ctx).WithField("hash", uploaded.Hash).Info("Imagem enviada")
		return uploaded, nil
	}

	return nil, apiErrors.New(apiErrors.ErrOperationFailed, "No image data in upload response.")
}

func (s *MetaIntegrator) ListVideos(ctx context.Context, opts domain.ListOptions) (*domain.ListResult[domain.AdVideo], error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fields", fieldsOrDefault(opts.Fields, domain.VideoListFields).String())

	return list[domain.AdVideo](ctx, s.Client, account+"/advideos", params, opts)
}

func (s *MetaIntegrator) GetVideo(ctx context.Context, id string, fields domain.FieldSet) (*domain.AdVideo, error) {
	return get[domain.AdVideo](ctx, s.Client, id, fieldsOrDefault(fields, domain.VideoGetFields))
}

// UploadVideo envia um arquivo local (multipart "source") ou pede à Graph API que baixe file_url
func (s *MetaIntegrator) UploadVideo(ctx context.Context, params domain.VideoUpload) (*domain.AdVideo, error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	name := params.Name
	if name == "" && params.FilePath != "" {
		name = filepath.Base(params.FilePath)
	}

	var resp metadomain.MutationResponse
	if params.FileURL != "" {
		form := url.Values{}
		form.Set("file_url", params.FileURL)
		setIf(form, "name", name)

		if err := s.Client.Post(ctx, account+"/advideos", form, &resp); err != nil {
			return nil, err
		}
	} else {
		file, err := openUpload(params.FilePath)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		fields := map[string]string{}
		if name != "" {
			fields["name"] = name
		}
		err = s.Client.PostMultipart(ctx, account+"/advideos", fields, &metaclient.FileUpload{
			FieldName: "source",
			FileName:  name,
			Reader:    file,
		}, &resp)
		if err != nil {
			return nil, err
		}
	}

	if resp.ID == "" {
		return nil, apiErrors.New(apiErrors.ErrOperationFailed, "No video ID in upload response.")
	}

	log.ForContext(ctx).WithField("video_id", resp.ID).Info("Vídeo enviado")

	return &domain.AdVideo{ID: resp.ID, Title: name}, nil
}

func openUpload(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrInvalidParameter, "Cannot read file "+path+".").WithDetail("file", path)
	}
	return file, nil
}
